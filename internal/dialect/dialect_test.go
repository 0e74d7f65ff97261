package dialect_test

import (
	"strings"
	"testing"

	"norm-lab/internal/dialect"
	"norm-lab/internal/schema"
)

func enrollmentDef() *schema.Table {
	for _, t := range schema.Definitions3NF() {
		if t.Name == schema.Table3NFEnrollment {
			return t
		}
	}
	return nil
}

func TestCreateTableSQL_SQLite(t *testing.T) {
	d := dialect.GetDialect("sqlite")
	ddl := d.CreateTableSQL(enrollmentDef())

	for _, want := range []string{
		`CREATE TABLE "nf3_enrollment"`,
		`"grade" TEXT NOT NULL CHECK ("grade" IN ('A', 'B', 'C', 'D', 'F'))`,
		`PRIMARY KEY ("enrollment_id")`,
		`FOREIGN KEY ("student_id") REFERENCES "nf3_student" ("student_id")`,
	} {
		if !strings.Contains(ddl, want) {
			t.Errorf("SQLite DDL missing %q:\n%s", want, ddl)
		}
	}
}

func TestCreateTableSQL_PostgresUsesVarchar(t *testing.T) {
	d := dialect.GetDialect("postgres")
	ddl := d.CreateTableSQL(enrollmentDef())

	if !strings.Contains(ddl, `"grade" VARCHAR(1) NOT NULL`) {
		t.Errorf("Postgres DDL should use VARCHAR(1) for grade:\n%s", ddl)
	}
}

func TestInsertQuery_PlaceholderStyles(t *testing.T) {
	cols := []string{"student_id", "name"}
	cases := []struct {
		driver string
		want   string
	}{
		{"sqlite", "VALUES (?, ?)"},
		{"postgres", "VALUES ($1, $2)"},
		{"mysql", "VALUES (?, ?)"},
		{"mssql", "VALUES (@p1, @p2)"},
		{"oracle", "VALUES (:1, :2)"},
	}
	for _, c := range cases {
		got := dialect.GetDialect(c.driver).InsertQuery("nf3_student", cols)
		if !strings.Contains(got, c.want) {
			t.Errorf("%s: expected %q in %q", c.driver, c.want, got)
		}
	}
}

func TestQuoteIdent_PerDialect(t *testing.T) {
	cases := []struct {
		driver string
		want   string
	}{
		{"sqlite", `"nf1_enrollment_flat"`},
		{"mysql", "`nf1_enrollment_flat`"},
		{"mssql", "[nf1_enrollment_flat]"},
	}
	for _, c := range cases {
		if got := dialect.GetDialect(c.driver).QuoteIdent("nf1_enrollment_flat"); got != c.want {
			t.Errorf("%s: got %s, want %s", c.driver, got, c.want)
		}
	}
}

func TestGetDialect_DefaultsToSQLite(t *testing.T) {
	if got := dialect.GetDialect("something-else").Name(); got != "sqlite" {
		t.Errorf("Expected sqlite fallback, got %s", got)
	}
}
