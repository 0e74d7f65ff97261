package schema_test

import (
	"testing"

	"norm-lab/internal/schema"
)

func TestSortByDependency_Simple(t *testing.T) {
	// Enrollment -> Student, Course; Course independent
	tables := []*schema.Table{
		{Name: "enrollment", Dependencies: []string{"student", "course"}},
		{Name: "student", Dependencies: []string{}},
		{Name: "course", Dependencies: []string{}},
	}

	sorted := schema.SortByDependency(tables)

	if len(sorted) != 3 {
		t.Fatalf("Expected 3 tables, got %d", len(sorted))
	}
	if sorted[2].Name != "enrollment" {
		t.Errorf("Expected enrollment last, got %s", sorted[2].Name)
	}
}

func TestSortByDependency_3NFStage(t *testing.T) {
	sorted := schema.SortByDependency(schema.Definitions3NF())

	pos := make(map[string]int)
	for i, tbl := range sorted {
		pos[tbl.Name] = i
	}

	if len(pos) != 5 {
		t.Fatalf("Expected 5 distinct tables, got %d", len(pos))
	}
	if pos[schema.Table3NFDepartment] > pos[schema.Table3NFInstructor] {
		t.Error("Department must be created before instructor")
	}
	for _, parent := range []string{schema.Table3NFStudent, schema.Table3NFCourse, schema.Table3NFInstructor} {
		if pos[parent] > pos[schema.Table3NFEnrollment] {
			t.Errorf("%s must be created before enrollment", parent)
		}
	}
}

func TestSortByDependency_ForcesThroughBadInput(t *testing.T) {
	// A <-> B reference each other; the sort must still terminate with both.
	tables := []*schema.Table{
		{Name: "a", Dependencies: []string{"b"}},
		{Name: "b", Dependencies: []string{"a"}},
	}

	sorted := schema.SortByDependency(tables)
	if len(sorted) != 2 {
		t.Fatalf("Expected both tables in output, got %d", len(sorted))
	}
}
