package dialect

import (
	"database/sql"

	"norm-lab/internal/schema"
)

// Dialect abstracts database-specific SQL generation and the small amount of
// introspection the materializer needs for conflict detection.
type Dialect interface {
	Name() string

	// Syntax
	QuoteIdent(name string) string
	Placeholder(index int) string // Returns ?, $1, @p1, :1, etc.
	ColumnType(col *schema.Column) string

	// DDL
	CreateTableSQL(t *schema.Table) string
	DropTableSQL(table string) string
	TruncateQuery(table string) string

	// DML
	InsertQuery(table string, cols []string) string

	// Introspection: one bind parameter (table name), returns column names
	// in ordinal position, zero rows when the table does not exist.
	TableColumnsQuery() string

	// Execution hooks around a materialization transaction
	BeforeMaterialize(tx *sql.Tx) error
	AfterMaterialize(tx *sql.Tx) error
}
