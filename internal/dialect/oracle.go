package dialect

import (
	"database/sql"
	"fmt"
	"strings"

	"norm-lab/internal/schema"
)

type OracleDialect struct{}

func (d *OracleDialect) Name() string { return "oracle" }

func (d *OracleDialect) QuoteIdent(name string) string {
	// Unquoted identifiers fold to upper case in Oracle; quoting keeps the
	// lower-case stage table names usable from other tools.
	return `"` + name + `"`
}

func (d *OracleDialect) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) ColumnType(col *schema.Column) string {
	switch col.Type {
	case schema.TypeInt:
		return "NUMBER(10)"
	default:
		length := col.Length
		if length == 0 {
			length = 255
		}
		return fmt.Sprintf("VARCHAR2(%d)", length)
	}
}

func (d *OracleDialect) CreateTableSQL(t *schema.Table) string {
	return RenderCreateTable(d, t)
}

func (d *OracleDialect) DropTableSQL(table string) string {
	// No IF EXISTS before 23c; swallow ORA-00942 inside a PL/SQL block.
	return fmt.Sprintf(`BEGIN
  EXECUTE IMMEDIATE 'DROP TABLE "%s" CASCADE CONSTRAINTS';
EXCEPTION
  WHEN OTHERS THEN IF SQLCODE != -942 THEN RAISE; END IF;
END;`, table)
}

func (d *OracleDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.QuoteIdent(table))
}

func (d *OracleDialect) InsertQuery(table string, cols []string) string {
	return RenderInsert(d, table, cols)
}

func (d *OracleDialect) TableColumnsQuery() string {
	return strings.TrimSpace(`
SELECT column_name FROM user_tab_columns WHERE table_name = :1 ORDER BY column_id`)
}

func (d *OracleDialect) BeforeMaterialize(tx *sql.Tx) error {
	return nil
}

func (d *OracleDialect) AfterMaterialize(tx *sql.Tx) error {
	return nil
}
