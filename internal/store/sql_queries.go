// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	userColumns = []string{"user_id", "username", "password_hash", "email", "created_at", "updated_at"}
	todoColumns = []string{"todo_id", "user_id", "title", "description", "done", "created_at", "updated_at"}

	usersTable = models.User{}.TableName()
	todosTable = models.Todo{}.TableName()
)

// likeEscaper escapes LIKE wildcards so a search term is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password_hash", "email", "created_at", "updated_at").
		Values(user.Username, user.PasswordHash, user.Email, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	q := b.Select(userColumns...).From(usersTable)
	if where != nil {
		q = q.Where(where)
	}
	return q.OrderBy("user_id").ToSql()
}

func buildUserExistsQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select("1").From(usersTable).Where(where).Limit(1).ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("username", user.Username).
		Set("email", user.Email).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"user_id": user.UserID}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(usersTable).Where(sq.Eq{"user_id": id}).ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	q := b.Select("COUNT(*)").From(usersTable)
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}

func createdAtOrAfter(t time.Time) sq.Sqlizer {
	return sq.GtOrEq{"created_at": t}
}

// activeUser matches users with a non-blank username and email.
func activeUser() sq.Sqlizer {
	return sq.And{
		sq.Expr("TRIM(username) <> ''"),
		sq.Expr("TRIM(email) <> ''"),
	}
}

// userSearch matches term as a case-insensitive substring of username or
// email.
func userSearch(term string) sq.Sqlizer {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	return sq.Or{
		sq.Expr(`LOWER(username) LIKE ? ESCAPE '\'`, pattern),
		sq.Expr(`LOWER(email) LIKE ? ESCAPE '\'`, pattern),
	}
}

// ── todos ─────────────────────────────────────────────────────────────────────

func buildInsertTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	return b.Insert(todosTable).
		Columns("user_id", "title", "description", "done", "created_at", "updated_at").
		Values(todo.UserID, todo.Title, todo.Description, todo.Done, todo.CreatedAt, todo.UpdatedAt).
		Suffix("RETURNING todo_id").
		ToSql()
}

func buildSelectTodosQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	q := b.Select(todoColumns...).From(todosTable)
	if where != nil {
		q = q.Where(where)
	}
	return q.OrderBy("todo_id").ToSql()
}

func buildTodoExistsQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("1").From(todosTable).Where(sq.Eq{"todo_id": id}).Limit(1).ToSql()
}

func buildUpdateTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	return b.Update(todosTable).
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("done", todo.Done).
		Set("updated_at", todo.UpdatedAt).
		Where(sq.Eq{"todo_id": todo.TodoID}).
		ToSql()
}

func buildDeleteTodosQuery(b sq.StatementBuilderType, ids ...int64) (string, []any, error) {
	return b.Delete(todosTable).Where(sq.Eq{"todo_id": ids}).ToSql()
}

func buildCountTodosQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	q := b.Select("COUNT(*)").From(todosTable)
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}
