package normalize_test

import (
	"errors"
	"reflect"
	"testing"

	"norm-lab/internal/dataset"
	"norm-lab/internal/normalize"
)

func twoStudentRecords() []dataset.UnnormalizedRecord {
	return []dataset.UnnormalizedRecord{
		{
			StudentID:   1,
			Name:        "Alice",
			Courses:     []string{"Math", "Physics"},
			Instructors: []string{"Dr. Smith", "Dr. Jones"},
			Departments: []string{"Science", "Science"},
			Grades:      []string{"A", "B"},
		},
		{
			StudentID:   2,
			Name:        "Bob",
			Courses:     []string{"Chemistry"},
			Instructors: []string{"Dr. Brown"},
			Departments: []string{"Engineering"},
			Grades:      []string{"A"},
		},
	}
}

func TestDecompose_EmitsOneRowPerCoursePosition(t *testing.T) {
	rows, err := normalize.Decompose(twoStudentRecords())
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 flat rows, got %d", len(rows))
	}

	want := normalize.FlatRow{
		StudentID: 1, Name: "Alice",
		Course: "Physics", Instructor: "Dr. Jones", Department: "Science", Grade: "B",
	}
	if rows[1] != want {
		t.Errorf("Row 1 mismatch: got %+v, want %+v", rows[1], want)
	}
}

func TestDecompose_MismatchedListsFailWithAlignmentError(t *testing.T) {
	records := []dataset.UnnormalizedRecord{{
		StudentID:   7,
		Name:        "Mallory",
		Courses:     []string{"Math", "Physics"},
		Instructors: []string{"Dr. Smith"},
		Departments: []string{"Science", "Science"},
		Grades:      []string{"A", "A"},
	}}

	rows, err := normalize.Decompose(records)
	if rows != nil {
		t.Errorf("Expected zero output rows on alignment failure, got %d", len(rows))
	}

	var alignErr *normalize.AlignmentError
	if !errors.As(err, &alignErr) {
		t.Fatalf("Expected AlignmentError, got %v", err)
	}
	if alignErr.StudentID != 7 || alignErr.Field != "instructors" || alignErr.Want != 2 || alignErr.Got != 1 {
		t.Errorf("Unexpected error fields: %+v", alignErr)
	}
}

func TestDecompose_ZeroCourseRecordYieldsNoRows(t *testing.T) {
	records := []dataset.UnnormalizedRecord{
		{StudentID: 1, Name: "Eve"},
		twoStudentRecords()[1],
	}

	rows, err := normalize.Decompose(records)
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected only Bob's row, got %d rows", len(rows))
	}
	if rows[0].StudentID != 2 {
		t.Errorf("Expected row for student 2, got %d", rows[0].StudentID)
	}
}

// Grouping flat rows by student in emission order must reproduce the source
// lists for every record that had at least one course.
func TestDecompose_RoundTripReproducesSourceLists(t *testing.T) {
	records := twoStudentRecords()
	rows, err := normalize.Decompose(records)
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}

	rebuilt := make(map[int]*dataset.UnnormalizedRecord)
	for _, r := range rows {
		rec, ok := rebuilt[r.StudentID]
		if !ok {
			rec = &dataset.UnnormalizedRecord{StudentID: r.StudentID, Name: r.Name}
			rebuilt[r.StudentID] = rec
		}
		rec.Courses = append(rec.Courses, r.Course)
		rec.Instructors = append(rec.Instructors, r.Instructor)
		rec.Departments = append(rec.Departments, r.Department)
		rec.Grades = append(rec.Grades, r.Grade)
	}

	for _, want := range records {
		got, ok := rebuilt[want.StudentID]
		if !ok {
			t.Fatalf("Student %d lost in round trip", want.StudentID)
		}
		if !reflect.DeepEqual(*got, want) {
			t.Errorf("Round trip mismatch for student %d:\n got %+v\nwant %+v", want.StudentID, *got, want)
		}
	}
}
