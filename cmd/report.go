package cmd

import (
	"fmt"

	"norm-lab/internal/dialect"
	"norm-lab/internal/materialize"
	"norm-lab/internal/schema"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the enrollment roster by joining the 3NF tables",
	Long: `Joins student, enrollment, course, instructor and department back into
one readable roster. The same question against the 1NF table needs no joins
but trusts every repeated copy of every fact; here each fact exists once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := dialect.GetDialect(DriverName)

		exists, err := materialize.TableExists(DB, d, schema.Table3NFEnrollment)
		if err != nil {
			return fmt.Errorf("failed to probe for 3NF tables: %w", err)
		}
		if !exists {
			return fmt.Errorf("3NF tables not found; run `norm-lab run` first")
		}

		q := func(name string) string { return d.QuoteIdent(name) }
		query := fmt.Sprintf(`SELECT s.%s, c.%s, i.%s, dep.%s, e.%s
FROM %s e
JOIN %s s ON e.%s = s.%s
JOIN %s c ON e.%s = c.%s
JOIN %s i ON e.%s = i.%s
JOIN %s dep ON i.%s = dep.%s
ORDER BY s.%s, c.%s`,
			q("name"), q("name"), q("name"), q("name"), q("grade"),
			q(schema.Table3NFEnrollment),
			q(schema.Table3NFStudent), q("student_id"), q("student_id"),
			q(schema.Table3NFCourse), q("course_id"), q("course_id"),
			q(schema.Table3NFInstructor), q("instructor_id"), q("instructor_id"),
			q(schema.Table3NFDepartment), q("department_id"), q("department_id"),
			q("student_id"), q("name"))

		rows, err := DB.Query(query)
		if err != nil {
			return fmt.Errorf("roster query failed: %w", err)
		}
		defer rows.Close()

		fmt.Printf("%-20s %-15s %-15s %-15s %s\n", "STUDENT", "COURSE", "INSTRUCTOR", "DEPARTMENT", "GRADE")
		count := 0
		for rows.Next() {
			var student, course, instructor, department, grade string
			if err := rows.Scan(&student, &course, &instructor, &department, &grade); err != nil {
				return fmt.Errorf("failed to scan roster row: %w", err)
			}
			fmt.Printf("%-20s %-15s %-15s %-15s %s\n", student, course, instructor, department, grade)
			count++
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating roster: %w", err)
		}
		fmt.Printf("\n%d enrollment(s)\n", count)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)
}
