package dialect

import (
	"database/sql"
	"fmt"

	"norm-lab/internal/schema"
)

type MSSQLDialect struct{}

func (d *MSSQLDialect) Name() string { return "mssql" }

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return "[" + name + "]"
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) ColumnType(col *schema.Column) string {
	switch col.Type {
	case schema.TypeInt:
		return "INT"
	default:
		length := col.Length
		if length == 0 {
			length = 255
		}
		return fmt.Sprintf("NVARCHAR(%d)", length)
	}
}

func (d *MSSQLDialect) CreateTableSQL(t *schema.Table) string {
	return RenderCreateTable(d, t)
}

func (d *MSSQLDialect) DropTableSQL(table string) string {
	return fmt.Sprintf("IF OBJECT_ID('%s', 'U') IS NOT NULL DROP TABLE %s", table, d.QuoteIdent(table))
}

func (d *MSSQLDialect) TruncateQuery(table string) string {
	// DELETE instead of TRUNCATE: TRUNCATE fails on FK-referenced tables.
	return fmt.Sprintf("DELETE FROM %s", d.QuoteIdent(table))
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string) string {
	return RenderInsert(d, table, cols)
}

func (d *MSSQLDialect) TableColumnsQuery() string {
	return `SELECT COLUMN_NAME FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA = 'dbo' AND TABLE_NAME = @p1
ORDER BY ORDINAL_POSITION`
}

func (d *MSSQLDialect) BeforeMaterialize(tx *sql.Tx) error {
	return nil
}

func (d *MSSQLDialect) AfterMaterialize(tx *sql.Tx) error {
	return nil
}
