package dialect

import (
	"database/sql"
	"fmt"

	"norm-lab/internal/schema"
)

// SQLiteDialect targets modernc.org/sqlite (pure Go). It is the default:
// an in-memory DSN gives the pipeline a self-contained place to materialize
// into without any server.
type SQLiteDialect struct{}

func (d *SQLiteDialect) Name() string { return "sqlite" }

func (d *SQLiteDialect) QuoteIdent(name string) string {
	return `"` + name + `"`
}

func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) ColumnType(col *schema.Column) string {
	// SQLite uses type affinity; lengths are advisory and omitted.
	switch col.Type {
	case schema.TypeInt:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

func (d *SQLiteDialect) CreateTableSQL(t *schema.Table) string {
	return RenderCreateTable(d, t)
}

func (d *SQLiteDialect) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *SQLiteDialect) TruncateQuery(table string) string {
	// SQLite has no TRUNCATE.
	return fmt.Sprintf("DELETE FROM %s", d.QuoteIdent(table))
}

func (d *SQLiteDialect) InsertQuery(table string, cols []string) string {
	return RenderInsert(d, table, cols)
}

func (d *SQLiteDialect) TableColumnsQuery() string {
	return `SELECT name FROM pragma_table_info(?) ORDER BY cid`
}

func (d *SQLiteDialect) BeforeMaterialize(tx *sql.Tx) error {
	// Enforce FK declarations during the insert phase; off by default in SQLite.
	_, err := tx.Exec("PRAGMA foreign_keys = ON")
	return err
}

func (d *SQLiteDialect) AfterMaterialize(tx *sql.Tx) error {
	return nil
}
