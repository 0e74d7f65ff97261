package normalize

import (
	"log"

	"norm-lab/internal/dataset"
)

// Decompose converts UNF records to 1NF rows: one row per aligned list
// position. Every list on a record must have the same length as Courses or
// the positional pairing is meaningless; a mismatch aborts the stage with an
// AlignmentError rather than guessing.
//
// A record with zero courses produces zero rows. The student then appears
// nowhere downstream — logged loudly because that loss is easy to miss.
func Decompose(records []dataset.UnnormalizedRecord) ([]FlatRow, error) {
	var rows []FlatRow
	for _, rec := range records {
		if err := checkAlignment(rec); err != nil {
			return nil, err
		}
		if len(rec.Courses) == 0 {
			log.Printf("Warning: student %d (%s) has no courses and is dropped by 1NF decomposition", rec.StudentID, rec.Name)
			continue
		}
		for i := range rec.Courses {
			rows = append(rows, FlatRow{
				StudentID:  rec.StudentID,
				Name:       rec.Name,
				Course:     rec.Courses[i],
				Instructor: rec.Instructors[i],
				Department: rec.Departments[i],
				Grade:      rec.Grades[i],
			})
		}
	}
	return rows, nil
}

func checkAlignment(rec dataset.UnnormalizedRecord) error {
	want := len(rec.Courses)
	for _, l := range []struct {
		field string
		n     int
	}{
		{"instructors", len(rec.Instructors)},
		{"departments", len(rec.Departments)},
		{"grades", len(rec.Grades)},
	} {
		if l.n != want {
			return &AlignmentError{StudentID: rec.StudentID, Field: l.field, Want: want, Got: l.n}
		}
	}
	return nil
}
