// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contacts/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns    = []string{"id", "username", "name", "password", "token", "created_at"}
	contactColumns = []string{"id", "username", "first_name", "last_name", "email", "phone", "created_at"}
	addressColumns = []string{"id", "contact_id", "street", "city", "province", "country", "postal_code", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return toSQL(psql.Insert(user.TableName()).
		Columns("username", "name", "password").
		Values(user.Username, user.Name, user.Password).
		Suffix(returning(userColumns)))
}

func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return toSQL(psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where))
}

func buildUpdateUserQuery(user models.User) (string, []any, error) {
	return toSQL(psql.Update(user.TableName()).
		Set("name", user.Name).
		Set("password", user.Password).
		Where(sq.Eq{"username": user.Username}).
		Suffix(returning(userColumns)))
}

func buildSetTokenQuery(username string, token *string) (string, []any, error) {
	return toSQL(psql.Update(models.User{}.TableName()).
		Set("token", token).
		Where(sq.Eq{"username": username}))
}

// ── contacts ──────────────────────────────────────────────────────────────────

func buildInsertContactQuery(contact models.Contact) (string, []any, error) {
	return toSQL(psql.Insert(contact.TableName()).
		Columns("username", "first_name", "last_name", "email", "phone").
		Values(contact.Username, contact.FirstName, contact.LastName, contact.Email, contact.Phone).
		Suffix(returning(contactColumns)))
}

func buildSelectContactQuery(username string, contactID int64) (string, []any, error) {
	return toSQL(psql.Select(contactColumns...).
		From(models.Contact{}.TableName()).
		Where(sq.Eq{"id": contactID, "username": username}))
}

func buildUpdateContactQuery(contact models.Contact) (string, []any, error) {
	return toSQL(psql.Update(contact.TableName()).
		Set("first_name", contact.FirstName).
		Set("last_name", contact.LastName).
		Set("email", contact.Email).
		Set("phone", contact.Phone).
		Where(sq.Eq{"id": contact.ID, "username": contact.Username}).
		Suffix(returning(contactColumns)))
}

func buildDeleteContactQuery(username string, contactID int64) (string, []any, error) {
	return toSQL(psql.Delete(models.Contact{}.TableName()).
		Where(sq.Eq{"id": contactID, "username": username}))
}

// contactSearchFilter scopes the search to the owner and adds one
// conjunct per filter present in req.
func contactSearchFilter(username string, req models.SearchContactRequest) sq.And {
	filter := sq.And{sq.Eq{"username": username}}

	if req.Name != nil {
		pattern := containsPattern(*req.Name)
		filter = append(filter, sq.Or{
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
		})
	}
	if req.Email != nil {
		filter = append(filter, sq.ILike{"email": containsPattern(*req.Email)})
	}
	if req.Phone != nil {
		filter = append(filter, sq.ILike{"phone": containsPattern(*req.Phone)})
	}

	return filter
}

func buildSearchContactsQuery(username string, req models.SearchContactRequest) (string, []any, error) {
	return toSQL(psql.Select(contactColumns...).
		From(models.Contact{}.TableName()).
		Where(contactSearchFilter(username, req)).
		OrderBy("id").
		Limit(uint64(req.PerPage)).
		Offset(req.Offset()))
}

func buildCountContactsQuery(username string, req models.SearchContactRequest) (string, []any, error) {
	return toSQL(psql.Select("COUNT(*)").
		From(models.Contact{}.TableName()).
		Where(contactSearchFilter(username, req)))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user input into a LIKE pattern matching it as a
// literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// ── addresses ─────────────────────────────────────────────────────────────────

func buildInsertAddressQuery(address models.Address) (string, []any, error) {
	return toSQL(psql.Insert(address.TableName()).
		Columns("contact_id", "street", "city", "province", "country", "postal_code").
		Values(address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode).
		Suffix(returning(addressColumns)))
}

func buildSelectAddressQuery(contactID, addressID int64) (string, []any, error) {
	return toSQL(psql.Select(addressColumns...).
		From(models.Address{}.TableName()).
		Where(sq.Eq{"id": addressID, "contact_id": contactID}))
}

func buildUpdateAddressQuery(address models.Address) (string, []any, error) {
	return toSQL(psql.Update(address.TableName()).
		Set("street", address.Street).
		Set("city", address.City).
		Set("province", address.Province).
		Set("country", address.Country).
		Set("postal_code", address.PostalCode).
		Where(sq.Eq{"id": address.ID, "contact_id": address.ContactID}).
		Suffix(returning(addressColumns)))
}

func buildDeleteAddressQuery(contactID, addressID int64) (string, []any, error) {
	return toSQL(psql.Delete(models.Address{}.TableName()).
		Where(sq.Eq{"id": addressID, "contact_id": contactID}))
}

func buildListAddressesQuery(contactID int64) (string, []any, error) {
	return toSQL(psql.Select(addressColumns...).
		From(models.Address{}.TableName()).
		Where(sq.Eq{"contact_id": contactID}).
		OrderBy("id"))
}
