package dialect

import (
	"database/sql"
	"fmt"

	"norm-lab/internal/schema"
)

type MysqlDialect struct{}

func (d *MysqlDialect) Name() string { return "mysql" }

func (d *MysqlDialect) QuoteIdent(name string) string {
	return "`" + name + "`"
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) ColumnType(col *schema.Column) string {
	switch col.Type {
	case schema.TypeInt:
		return "INT"
	default:
		length := col.Length
		if length == 0 {
			length = 255
		}
		return fmt.Sprintf("VARCHAR(%d)", length)
	}
}

func (d *MysqlDialect) CreateTableSQL(t *schema.Table) string {
	return RenderCreateTable(d, t)
}

func (d *MysqlDialect) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) string {
	return RenderInsert(d, table, cols)
}

func (d *MysqlDialect) TableColumnsQuery() string {
	return `SELECT COLUMN_NAME FROM information_schema.COLUMNS
WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ?
ORDER BY ORDINAL_POSITION`
}

func (d *MysqlDialect) BeforeMaterialize(tx *sql.Tx) error {
	_, err := tx.Exec("SET FOREIGN_KEY_CHECKS = 0")
	return err
}

func (d *MysqlDialect) AfterMaterialize(tx *sql.Tx) error {
	_, err := tx.Exec("SET FOREIGN_KEY_CHECKS = 1")
	return err
}
