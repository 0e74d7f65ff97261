package schema_test

import (
	"testing"

	"norm-lab/internal/dataset"
	"norm-lab/internal/normalize"
	"norm-lab/internal/schema"
)

func samplePipeline(t *testing.T) ([]normalize.FlatRow, *normalize.SecondNF, *normalize.ThirdNF) {
	t.Helper()
	flat, err := normalize.Decompose(dataset.Sample())
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	second, err := normalize.Extract(flat)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	third, err := normalize.Resolve(second)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	return flat, second, third
}

func TestBuild1NF_RowsMatchColumns(t *testing.T) {
	flat, _, _ := samplePipeline(t)
	tables := schema.Build1NF(flat)

	if len(tables) != 1 {
		t.Fatalf("Expected a single flat table, got %d", len(tables))
	}
	flatTable := tables[0]
	if len(flatTable.Rows) != len(flat) {
		t.Errorf("Expected %d rows, got %d", len(flat), len(flatTable.Rows))
	}
	for _, row := range flatTable.Rows {
		if len(row) != len(flatTable.Columns) {
			t.Fatalf("Row width %d does not match %d columns", len(row), len(flatTable.Columns))
		}
	}
	if pk := flatTable.PrimaryKey(); len(pk) != 2 {
		t.Errorf("Flat table should have a composite key, got %v", pk)
	}
}

func TestBuild2NF_EnrollmentReferencesParents(t *testing.T) {
	_, second, _ := samplePipeline(t)
	tables := schema.Build2NF(second)

	var enrollment *schema.Table
	for _, tbl := range tables {
		if tbl.Name == schema.Table2NFEnrollment {
			enrollment = tbl
		}
	}
	if enrollment == nil {
		t.Fatal("2NF set is missing the enrollment table")
	}

	refs := make(map[string]string)
	for _, fk := range enrollment.ForeignKeys {
		refs[fk.Column] = fk.RefTable
	}
	if refs["student_id"] != schema.Table2NFStudent {
		t.Errorf("student_id should reference %s, got %s", schema.Table2NFStudent, refs["student_id"])
	}
	if refs["instructor_id"] != schema.Table2NFInstructor {
		t.Errorf("instructor_id should reference %s, got %s", schema.Table2NFInstructor, refs["instructor_id"])
	}

	// Course is still a plain string at 2NF.
	if enrollment.Column("course") == nil {
		t.Error("2NF enrollment should carry the course name inline")
	}
}

func TestBuild3NF_GradeDomainDeclared(t *testing.T) {
	_, _, third := samplePipeline(t)
	tables := schema.Build3NF(third)

	var enrollment *schema.Table
	for _, tbl := range tables {
		if tbl.Name == schema.Table3NFEnrollment {
			enrollment = tbl
		}
	}
	if enrollment == nil {
		t.Fatal("3NF set is missing the enrollment table")
	}

	grade := enrollment.Column("grade")
	if grade == nil {
		t.Fatal("3NF enrollment has no grade column")
	}
	if len(grade.EnumValues) != 5 {
		t.Errorf("Grade domain should carry 5 letters, got %v", grade.EnumValues)
	}
	if enrollment.Column("course") != nil {
		t.Error("3NF enrollment must not carry the course name inline")
	}
	if len(enrollment.ForeignKeys) != 3 {
		t.Errorf("3NF enrollment should declare 3 foreign keys, got %d", len(enrollment.ForeignKeys))
	}
}
