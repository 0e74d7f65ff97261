package dialect

import (
	"database/sql"
	"fmt"

	"norm-lab/internal/schema"
)

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string { return "postgres" }

func (d *PostgresDialect) QuoteIdent(name string) string {
	return `"` + name + `"`
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) ColumnType(col *schema.Column) string {
	switch col.Type {
	case schema.TypeInt:
		return "INTEGER"
	default:
		if col.Length > 0 {
			return fmt.Sprintf("VARCHAR(%d)", col.Length)
		}
		return "TEXT"
	}
}

func (d *PostgresDialect) CreateTableSQL(t *schema.Table) string {
	return RenderCreateTable(d, t)
}

func (d *PostgresDialect) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", d.QuoteIdent(table))
}

func (d *PostgresDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s CASCADE", d.QuoteIdent(table))
}

func (d *PostgresDialect) InsertQuery(table string, cols []string) string {
	return RenderInsert(d, table, cols)
}

func (d *PostgresDialect) TableColumnsQuery() string {
	return `SELECT column_name FROM information_schema.columns
WHERE table_schema = 'public' AND table_name = $1
ORDER BY ordinal_position`
}

func (d *PostgresDialect) BeforeMaterialize(tx *sql.Tx) error {
	// Parents are created and filled first, but deferring keeps a partially
	// failed stage from tripping FK checks before rollback.
	_, err := tx.Exec("SET CONSTRAINTS ALL DEFERRED")
	return err
}

func (d *PostgresDialect) AfterMaterialize(tx *sql.Tx) error {
	_, err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE")
	return err
}
