// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for all entities the admin
// backend touches. Each store struct wraps a *sql.DB and exposes typed
// query methods over the shared Renunganku schema.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"renadmin/internal/update"
)

// execUpdate renders an assignment list into a parameterized UPDATE and
// executes it, binding the row id last. Column names always come from
// fixed lists in this package, never from request input. Returns the
// number of rows affected; zero means the row does not exist.
func execUpdate(ctx context.Context, db *sql.DB, table string, id string, assignments []update.Assignment) (int64, error) {
	var sb strings.Builder
	args := make([]any, 0, len(assignments)+1)

	fmt.Fprintf(&sb, `UPDATE %q SET `, table)
	for i, a := range assignments {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, `%q = $%d`, a.Column, i+1)
		args = append(args, a.Value)
	}
	fmt.Fprintf(&sb, ` WHERE id = $%d`, len(assignments)+1)
	args = append(args, id)

	result, err := db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update %s rows affected: %w", table, err)
	}
	return affected, nil
}

// execDelete deletes one row by id. Returns the number of rows affected;
// zero means the row does not exist.
func execDelete(ctx context.Context, db *sql.DB, table string, id string) (int64, error) {
	result, err := db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %q WHERE id = $1`, table), id)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete from %s rows affected: %w", table, err)
	}
	return affected, nil
}
