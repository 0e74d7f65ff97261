// Package verify runs the integrity-check battery against a materialized
// stage: referential (orphan), uniqueness, domain, and completeness checks.
// It only reads; findings are collected into a Report and never abort the
// run — the caller decides whether failures are fatal.
package verify

import (
	"database/sql"
	"fmt"
	"strings"

	"norm-lab/internal/dialect"
	"norm-lab/internal/schema"
)

// Report is the outcome of one verifier run: one CheckResult per executed
// check plus the typed findings behind the failed ones.
type Report struct {
	Results  []schema.CheckResult
	Findings []error
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// FailureCount returns the number of failed checks.
func (r *Report) FailureCount() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

// Run executes the battery against every given table. A query error (as
// opposed to a finding) aborts the run: it means the schema under test is
// not what the table definitions claim.
func Run(db *sql.DB, d dialect.Dialect, tables []*schema.Table) (*Report, error) {
	report := &Report{}
	for _, t := range tables {
		if err := checkOrphans(db, d, t, report); err != nil {
			return nil, err
		}
		if err := checkUniqueness(db, d, t, report); err != nil {
			return nil, err
		}
		if err := checkDomains(db, d, t, report); err != nil {
			return nil, err
		}
		if err := checkCompleteness(db, d, t, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// checkOrphans verifies every FK value resolves to a parent row.
func checkOrphans(db *sql.DB, d dialect.Dialect, t *schema.Table, report *Report) error {
	for _, fk := range t.ForeignKeys {
		query := fmt.Sprintf(
			"SELECT c.%s FROM %s c LEFT JOIN %s p ON c.%s = p.%s WHERE c.%s IS NOT NULL AND p.%s IS NULL ORDER BY 1",
			d.QuoteIdent(fk.Column), d.QuoteIdent(t.Name), d.QuoteIdent(fk.RefTable),
			d.QuoteIdent(fk.Column), d.QuoteIdent(fk.RefColumn),
			d.QuoteIdent(fk.Column), d.QuoteIdent(fk.RefColumn))

		values, err := queryValues(db, query)
		if err != nil {
			return fmt.Errorf("orphan check on %s.%s: %w", t.Name, fk.Column, err)
		}

		result := schema.CheckResult{
			Check:  "orphan",
			Table:  t.Name,
			Passed: len(values) == 0,
		}
		for _, v := range values {
			finding := &OrphanReferenceError{Table: t.Name, Column: fk.Column, Value: v}
			report.Findings = append(report.Findings, finding)
			result.Details = append(result.Details, finding.Error())
		}
		report.Results = append(report.Results, result)
	}
	return nil
}

// checkUniqueness verifies the primary key and every UNIQUE column hold no
// duplicate values.
func checkUniqueness(db *sql.DB, d dialect.Dialect, t *schema.Table, report *Report) error {
	var keySets [][]string
	if pk := t.PrimaryKey(); len(pk) > 0 {
		keySets = append(keySets, pk)
	}
	for _, c := range t.Columns {
		if c.IsUnique {
			keySets = append(keySets, []string{c.Name})
		}
	}

	for _, cols := range keySets {
		quoted := make([]string, len(cols))
		for i, c := range cols {
			quoted[i] = d.QuoteIdent(c)
		}
		colList := strings.Join(quoted, ", ")
		query := fmt.Sprintf("SELECT %s FROM %s GROUP BY %s HAVING COUNT(*) > 1 ORDER BY 1",
			colList, d.QuoteIdent(t.Name), colList)

		dups, err := queryTuples(db, query, len(cols))
		if err != nil {
			return fmt.Errorf("uniqueness check on %s(%s): %w", t.Name, strings.Join(cols, ","), err)
		}

		result := schema.CheckResult{
			Check:  "uniqueness",
			Table:  t.Name,
			Passed: len(dups) == 0,
		}
		for _, tuple := range dups {
			finding := &DuplicateKeyError{Table: t.Name, Column: strings.Join(cols, ","), Value: formatTuple(tuple)}
			report.Findings = append(report.Findings, finding)
			result.Details = append(result.Details, finding.Error())
		}
		report.Results = append(report.Results, result)
	}
	return nil
}

// checkDomains verifies enum-constrained columns only hold allowed values.
func checkDomains(db *sql.DB, d dialect.Dialect, t *schema.Table, report *Report) error {
	for _, c := range t.Columns {
		if len(c.EnumValues) == 0 {
			continue
		}
		inList := make([]string, len(c.EnumValues))
		for i, v := range c.EnumValues {
			inList[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
		}
		query := fmt.Sprintf("SELECT %s FROM %s WHERE %s NOT IN (%s) ORDER BY 1",
			d.QuoteIdent(c.Name), d.QuoteIdent(t.Name), d.QuoteIdent(c.Name), strings.Join(inList, ", "))

		values, err := queryValues(db, query)
		if err != nil {
			return fmt.Errorf("domain check on %s.%s: %w", t.Name, c.Name, err)
		}

		result := schema.CheckResult{
			Check:  "domain",
			Table:  t.Name,
			Passed: len(values) == 0,
		}
		for _, v := range values {
			finding := &DomainViolationError{Table: t.Name, Column: c.Name, Value: v}
			report.Findings = append(report.Findings, finding)
			result.Details = append(result.Details, finding.Error())
		}
		report.Results = append(report.Results, result)
	}
	return nil
}

// checkCompleteness verifies reference columns carry no NULLs.
func checkCompleteness(db *sql.DB, d dialect.Dialect, t *schema.Table, report *Report) error {
	for _, fk := range t.ForeignKeys {
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s IS NULL",
			d.QuoteIdent(t.Name), d.QuoteIdent(fk.Column))

		var count int
		if err := db.QueryRow(query).Scan(&count); err != nil {
			return fmt.Errorf("completeness check on %s.%s: %w", t.Name, fk.Column, err)
		}

		result := schema.CheckResult{
			Check:  "completeness",
			Table:  t.Name,
			Passed: count == 0,
		}
		if count > 0 {
			finding := &MissingReferenceError{Table: t.Name, Column: fk.Column, Count: count}
			report.Findings = append(report.Findings, finding)
			result.Details = append(result.Details, finding.Error())
		}
		report.Results = append(report.Results, result)
	}
	return nil
}

func queryValues(db *sql.DB, query string) ([]interface{}, error) {
	tuples, err := queryTuples(db, query, 1)
	if err != nil {
		return nil, err
	}
	values := make([]interface{}, len(tuples))
	for i, tuple := range tuples {
		values[i] = normalizeValue(tuple[0])
	}
	return values, nil
}

func queryTuples(db *sql.DB, query string, width int) ([][]interface{}, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tuples [][]interface{}
	for rows.Next() {
		tuple := make([]interface{}, width)
		ptrs := make([]interface{}, width)
		for i := range tuple {
			ptrs[i] = &tuple[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		tuples = append(tuples, tuple)
	}
	return tuples, rows.Err()
}

func formatTuple(tuple []interface{}) string {
	parts := make([]string, len(tuple))
	for i, v := range tuple {
		parts[i] = fmt.Sprintf("%v", normalizeValue(v))
	}
	return strings.Join(parts, "/")
}

// normalizeValue makes driver-specific scan types readable in reports.
func normalizeValue(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
