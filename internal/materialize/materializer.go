// Package materialize turns a stage's logical tables into physical ones:
// CREATE TABLE with declared constraints, then bulk insert of the stage's
// rows, all inside one transaction so a failed stage leaves nothing behind.
package materialize

import (
	"database/sql"
	"fmt"

	"norm-lab/internal/dialect"
	"norm-lab/internal/schema"
)

// SchemaConflictError reports an existing table whose column set differs
// from the one the stage wants to create.
type SchemaConflictError struct {
	Table    string
	Existing []string
	Want     []string
}

func (e *SchemaConflictError) Error() string {
	return fmt.Sprintf("table %s already exists with columns %v, incompatible with %v",
		e.Table, e.Existing, e.Want)
}

// Materialize creates and populates the stage tables. Parents are created
// before dependents (FK declaration order). A same-name table that already
// exists with the same column set is dropped and recreated, making reruns
// idempotent; a different column set aborts with SchemaConflictError.
func Materialize(db *sql.DB, d dialect.Dialect, tables []*schema.Table) error {
	sorted := schema.SortByDependency(tables)

	// Conflict detection up front, before any DDL runs.
	existing := make(map[string]bool)
	for _, t := range sorted {
		cols, err := TableColumns(db, d, t.Name)
		if err != nil {
			return fmt.Errorf("failed to introspect %s: %w", t.Name, err)
		}
		if len(cols) == 0 {
			continue
		}
		if !sameColumns(cols, t.ColumnNames()) {
			return &SchemaConflictError{Table: t.Name, Existing: cols, Want: t.ColumnNames()}
		}
		existing[t.Name] = true
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	if err := d.BeforeMaterialize(tx); err != nil {
		return fmt.Errorf("dialect pre-hook failed: %w", err)
	}

	// Drop leftovers from a previous run, dependents first.
	for i := len(sorted) - 1; i >= 0; i-- {
		if !existing[sorted[i].Name] {
			continue
		}
		if _, err := tx.Exec(d.DropTableSQL(sorted[i].Name)); err != nil {
			return fmt.Errorf("failed to drop %s: %w", sorted[i].Name, err)
		}
	}

	for _, t := range sorted {
		if _, err := tx.Exec(d.CreateTableSQL(t)); err != nil {
			return fmt.Errorf("failed to create %s: %w", t.Name, err)
		}
		if err := insertRows(tx, d, t); err != nil {
			return err
		}
	}

	if err := d.AfterMaterialize(tx); err != nil {
		return fmt.Errorf("dialect post-hook failed: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit materialization: %w", err)
	}
	tx = nil
	return nil
}

func insertRows(tx *sql.Tx, d dialect.Dialect, t *schema.Table) error {
	if len(t.Rows) == 0 {
		return nil
	}
	stmt, err := tx.Prepare(d.InsertQuery(t.Name, t.ColumnNames()))
	if err != nil {
		return fmt.Errorf("failed to prepare insert for %s: %w", t.Name, err)
	}
	defer stmt.Close()

	for _, row := range t.Rows {
		if _, err := stmt.Exec(row...); err != nil {
			return fmt.Errorf("failed to insert into %s (row %v): %w", t.Name, row, err)
		}
	}
	return nil
}

// TableExists reports whether the named table is present in the target
// database, using the dialect's column introspection.
func TableExists(db *sql.DB, d dialect.Dialect, table string) (bool, error) {
	cols, err := TableColumns(db, d, table)
	if err != nil {
		return false, err
	}
	return len(cols) > 0, nil
}

// Drop removes the named tables if present, in the given order.
func Drop(db *sql.DB, d dialect.Dialect, names []string) error {
	for _, name := range names {
		if _, err := db.Exec(d.DropTableSQL(name)); err != nil {
			return fmt.Errorf("failed to drop %s: %w", name, err)
		}
	}
	return nil
}

// TableColumns returns the existing table's column names in ordinal order,
// or nil when the table does not exist.
func TableColumns(db *sql.DB, d dialect.Dialect, table string) ([]string, error) {
	rows, err := db.Query(d.TableColumnsQuery(), table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
