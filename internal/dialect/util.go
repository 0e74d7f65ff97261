package dialect

import (
	"fmt"
	"strings"

	"norm-lab/internal/schema"
)

// GeneratePlaceholders returns a comma-separated list of count placeholders
// produced by placeholderFunc.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// RenderCreateTable builds an ANSI-style CREATE TABLE statement using the
// dialect's quoting and type mapping. Column constraints (NOT NULL, UNIQUE,
// CHECK on enum domains) are rendered inline; the primary key and foreign
// keys as table constraints.
func RenderCreateTable(d Dialect, t *schema.Table) string {
	var defs []string
	for _, c := range t.Columns {
		def := d.QuoteIdent(c.Name) + " " + d.ColumnType(c)
		if !c.IsNullable {
			def += " NOT NULL"
		}
		if c.IsUnique {
			def += " UNIQUE"
		}
		if len(c.EnumValues) > 0 {
			def += fmt.Sprintf(" CHECK (%s IN (%s))", d.QuoteIdent(c.Name), quoteStrings(c.EnumValues))
		}
		defs = append(defs, def)
	}

	if pk := t.PrimaryKey(); len(pk) > 0 {
		defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", quoteIdents(d, pk)))
	}
	for _, fk := range t.ForeignKeys {
		defs = append(defs, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)",
			d.QuoteIdent(fk.Column), d.QuoteIdent(fk.RefTable), d.QuoteIdent(fk.RefColumn)))
	}

	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", d.QuoteIdent(t.Name), strings.Join(defs, ",\n  "))
}

// RenderInsert builds the dialect's INSERT statement for the given columns.
func RenderInsert(d Dialect, table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.QuoteIdent(c)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(table), strings.Join(quoted, ", "), GeneratePlaceholders(len(cols), d.Placeholder))
}

func quoteIdents(d Dialect, names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.QuoteIdent(n)
	}
	return strings.Join(quoted, ", ")
}

func quoteStrings(vals []string) string {
	quoted := make([]string, len(vals))
	for i, v := range vals {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return strings.Join(quoted, ", ")
}
