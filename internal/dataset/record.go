package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UnnormalizedRecord is one row of the UNF source table: a student with
// positionally aligned course/instructor/department/grade lists. The i-th
// course is taught by the i-th instructor in the i-th department, and the
// student earned the i-th grade in it. That alignment is the whole reason
// this shape violates 1NF.
type UnnormalizedRecord struct {
	StudentID   int      `yaml:"student_id"`
	Name        string   `yaml:"name"`
	Courses     []string `yaml:"courses"`
	Instructors []string `yaml:"instructors"`
	Departments []string `yaml:"departments"`
	Grades      []string `yaml:"grades"`
}

// Dataset is the on-disk form consumed by `run --dataset` and produced by `seed`.
type Dataset struct {
	Records []UnnormalizedRecord `yaml:"records"`
}

// Sample returns the built-in teaching dataset used when no --dataset file
// is given. It deliberately repeats instructors and departments across
// students so the 2NF/3NF stages have redundancy to eliminate.
func Sample() []UnnormalizedRecord {
	return []UnnormalizedRecord{
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
			Courses:     []string{"Chemistry", "Math"},
			Instructors: []string{"Dr. Brown", "Dr. Smith"},
			Departments: []string{"Engineering", "Science"},
			Grades:      []string{"C", "A"},
		},
		{
			StudentID:   3,
			Name:        "Charlie",
			Courses:     []string{"Physics", "Chemistry", "Biology"},
			Instructors: []string{"Dr. Jones", "Dr. Brown", "Dr. Davis"},
			Departments: []string{"Science", "Engineering", "Science"},
			Grades:      []string{"B", "B", "A"},
		},
	}
}

// Load reads a YAML dataset file.
func Load(path string) ([]UnnormalizedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	if len(ds.Records) == 0 {
		return nil, fmt.Errorf("dataset %s contains no records", path)
	}
	return ds.Records, nil
}

// Save writes records to a YAML dataset file.
func Save(path string, records []UnnormalizedRecord) error {
	data, err := yaml.Marshal(Dataset{Records: records})
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset %s: %w", path, err)
	}
	return nil
}
