package dataset_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"norm-lab/internal/dataset"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	records := dataset.Sample()

	if err := dataset.Save(path, records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(records, loaded) {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", loaded, records)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := dataset.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestGenerate_ListsStayAligned(t *testing.T) {
	records := dataset.Generate(50, 42)
	if len(records) != 50 {
		t.Fatalf("Expected 50 records, got %d", len(records))
	}
	for _, rec := range records {
		n := len(rec.Courses)
		if n == 0 {
			t.Errorf("Record %d generated with no courses", rec.StudentID)
		}
		if len(rec.Instructors) != n || len(rec.Departments) != n || len(rec.Grades) != n {
			t.Errorf("Record %d has misaligned lists: %d/%d/%d/%d",
				rec.StudentID, n, len(rec.Instructors), len(rec.Departments), len(rec.Grades))
		}
	}
}

func TestGenerate_KeepsFunctionalDependencies(t *testing.T) {
	records := dataset.Generate(200, 7)

	courseInstructor := make(map[string]string)
	instructorDept := make(map[string]string)
	for _, rec := range records {
		for i, course := range rec.Courses {
			if prev, ok := courseInstructor[course]; ok && prev != rec.Instructors[i] {
				t.Fatalf("Course %s taught by both %s and %s", course, prev, rec.Instructors[i])
			}
			courseInstructor[course] = rec.Instructors[i]

			inst := rec.Instructors[i]
			if prev, ok := instructorDept[inst]; ok && prev != rec.Departments[i] {
				t.Fatalf("Instructor %s in both %s and %s", inst, prev, rec.Departments[i])
			}
			instructorDept[inst] = rec.Departments[i]
		}
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	a := dataset.Generate(10, 99)
	b := dataset.Generate(10, 99)
	if !reflect.DeepEqual(a, b) {
		t.Error("Same seed should produce the same dataset")
	}
}
