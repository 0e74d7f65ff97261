// Package schema holds the logical table model shared by the materializer
// and the verifier, plus the builders that turn normalization-stage output
// into concrete table definitions.
package schema

// ColumnType is a logical type mapped to a physical type by each dialect.
type ColumnType string

const (
	TypeInt  ColumnType = "int"
	TypeText ColumnType = "text"
)

type Table struct {
	Name         string
	Columns      []*Column
	ForeignKeys  []*ForeignKey
	Dependencies []string
	// Rows holds the stage's data, value order aligned with Columns.
	Rows [][]interface{}
}

type Column struct {
	Name       string
	Type       ColumnType
	Length     int
	IsNullable bool
	IsPK       bool
	IsUnique   bool
	// EnumValues, when set, becomes a CHECK (col IN (...)) constraint and
	// drives the verifier's domain check.
	EnumValues []string
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// PrimaryKey returns the names of the table's primary key columns.
func (t *Table) PrimaryKey() []string {
	var pk []string
	for _, c := range t.Columns {
		if c.IsPK {
			pk = append(pk, c.Name)
		}
	}
	return pk
}

// Column returns the named column, or nil.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ColumnNames returns column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// CheckResult is one verifier finding line, reported per check per table.
type CheckResult struct {
	Check   string
	Table   string
	Passed  bool
	Details []string
}
