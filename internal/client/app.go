// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/logger"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// App dispatches CLI subcommands to a [adapter.ContactsAPI].
type App struct {
	api      adapter.ContactsAPI
	out      io.Writer
	commands map[string]command

	logger *logger.Logger
}

func NewApp(api adapter.ContactsAPI, out io.Writer, logger *logger.Logger) (*App, error) {
	if api == nil {
		return nil, ErrNilAPI
	}

	a := &App{api: api, out: out, logger: logger}
	a.commands = map[string]command{
		"register":       {usage: "register a new user", run: a.register},
		"login":          {usage: "log in and print the session token", run: a.login},
		"me":             {usage: "show the current user", run: a.me},
		"logout":         {usage: "revoke the session token", run: a.logout},
		"contacts":       {usage: "search contacts", run: a.contacts},
		"contact-create": {usage: "create a contact", run: a.contactCreate},
		"addresses":      {usage: "list the addresses of a contact", run: a.addresses},
		"version":        {usage: "show the server version", run: a.version},
	}

	return a, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("func", "*App.Run").Str("command", name).Msg("running command")

	if err := cmd.run(ctx, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: client <command> [flags]")
	fmt.Fprintln(a.out, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %-16s %s\n", name, a.commands[name].usage)
	}
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// optional turns a blank flag value into an absent field.
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
