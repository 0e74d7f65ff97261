package normalize

import (
	"fmt"
	"strconv"
)

// Extract splits 1NF rows into 2NF entities. In the flat table the key is
// the composite (StudentID, Course); Name depends only on StudentID and
// instructor attributes only on the instructor — partial dependencies that
// 2NF forbids. Extraction groups those attributes under their real keys.
//
// Surrogate InstructorIDs are assigned in first-seen order of distinct
// instructor names, so output is deterministic for a given input order.
// Any key that maps to two different dependent values is a functional
// dependency violation in the source and fails with
// InconsistentAttributeError; nothing is skipped silently.
func Extract(rows []FlatRow) (*SecondNF, error) {
	out := &SecondNF{}

	studentName := make(map[int]string)
	instructorID := make(map[string]int)
	instructorDept := make(map[string]string)
	enrollmentAt := make(map[string]int) // (StudentID, Course) -> index in out.Enrollments

	for _, row := range rows {
		// Student: Name must be functionally determined by StudentID.
		if name, seen := studentName[row.StudentID]; seen {
			if name != row.Name {
				return nil, &InconsistentAttributeError{
					Entity:    "student",
					Key:       strconv.Itoa(row.StudentID),
					Attribute: "name",
					Have:      name,
					Got:       row.Name,
				}
			}
		} else {
			studentName[row.StudentID] = row.Name
			out.Students = append(out.Students, Student{StudentID: row.StudentID, Name: row.Name})
		}

		// Instructor: department must be functionally determined by the
		// instructor (it stays inline here; Resolve extracts it).
		id, seen := instructorID[row.Instructor]
		if seen {
			if instructorDept[row.Instructor] != row.Department {
				return nil, &InconsistentAttributeError{
					Entity:    "instructor",
					Key:       row.Instructor,
					Attribute: "department",
					Have:      instructorDept[row.Instructor],
					Got:       row.Department,
				}
			}
		} else {
			id = len(instructorID) + 1
			instructorID[row.Instructor] = id
			instructorDept[row.Instructor] = row.Department
			out.Instructors = append(out.Instructors, Instructor{
				InstructorID: id,
				Name:         row.Instructor,
				Department:   row.Department,
			})
		}

		// Enrollment identity is (StudentID, Course). An exact repeat
		// collapses; a repeat that disagrees on instructor or grade means
		// the source data never had that functional dependency.
		key := enrollmentKey(row.StudentID, row.Course)
		if at, dup := enrollmentAt[key]; dup {
			prev := out.Enrollments[at]
			if prev.InstructorID != id {
				return nil, &InconsistentAttributeError{
					Entity:    "enrollment",
					Key:       key,
					Attribute: "instructor",
					Have:      strconv.Itoa(prev.InstructorID),
					Got:       strconv.Itoa(id),
				}
			}
			if prev.Grade != row.Grade {
				return nil, &InconsistentAttributeError{
					Entity:    "enrollment",
					Key:       key,
					Attribute: "grade",
					Have:      prev.Grade,
					Got:       row.Grade,
				}
			}
			continue
		}
		enrollmentAt[key] = len(out.Enrollments)
		out.Enrollments = append(out.Enrollments, Enrollment{
			EnrollmentID: len(out.Enrollments) + 1,
			StudentID:    row.StudentID,
			Course:       row.Course,
			InstructorID: id,
			Grade:        row.Grade,
		})
	}
	return out, nil
}

func enrollmentKey(studentID int, course string) string {
	return fmt.Sprintf("%d/%s", studentID, course)
}
