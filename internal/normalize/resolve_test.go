package normalize_test

import (
	"testing"

	"norm-lab/internal/normalize"
)

func TestResolve_ExtractsDepartmentsAndCourses(t *testing.T) {
	second, err := normalize.Extract(scenarioFlatRows(t))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	third, err := normalize.Resolve(second)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(third.Departments) != 2 {
		t.Fatalf("Expected 2 departments, got %d", len(third.Departments))
	}
	if third.Departments[0].Name != "Science" || third.Departments[0].DepartmentID != 1 {
		t.Errorf("First department should be Science with ID 1, got %+v", third.Departments[0])
	}
	if third.Departments[1].Name != "Engineering" || third.Departments[1].DepartmentID != 2 {
		t.Errorf("Second department should be Engineering with ID 2, got %+v", third.Departments[1])
	}

	// Instructors now reference departments by ID, never by name.
	for _, inst := range third.Instructors {
		if inst.Department != "" {
			t.Errorf("Instructor %s still carries department name %q", inst.Name, inst.Department)
		}
		if inst.DepartmentID == 0 {
			t.Errorf("Instructor %s has no department reference", inst.Name)
		}
	}
	if third.Instructors[2].DepartmentID != 2 {
		t.Errorf("Dr. Brown should reference Engineering (2), got %d", third.Instructors[2].DepartmentID)
	}

	// Courses promoted to entities in first-seen order.
	wantCourses := []string{"Math", "Physics", "Chemistry"}
	if len(third.Courses) != len(wantCourses) {
		t.Fatalf("Expected %d courses, got %d", len(wantCourses), len(third.Courses))
	}
	for i, name := range wantCourses {
		if third.Courses[i].Name != name || third.Courses[i].CourseID != i+1 {
			t.Errorf("Course %d: got %+v, want {%d %s}", i, third.Courses[i], i+1, name)
		}
	}

	for _, enr := range third.Enrollments {
		if enr.Course != "" {
			t.Errorf("Enrollment %d still carries course name %q", enr.EnrollmentID, enr.Course)
		}
		if enr.CourseID == 0 {
			t.Errorf("Enrollment %d has no course reference", enr.EnrollmentID)
		}
	}
}

// A department name repeated across instructors must map to one department
// row: the name is the natural key.
func TestResolve_SharedDepartmentNameMapsToOneRow(t *testing.T) {
	second := &normalize.SecondNF{
		Instructors: []normalize.Instructor{
			{InstructorID: 1, Name: "Dr. Smith", Department: "Science"},
			{InstructorID: 2, Name: "Dr. Jones", Department: "Science"},
		},
	}

	third, err := normalize.Resolve(second)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(third.Departments) != 1 {
		t.Fatalf("Expected 1 department, got %d", len(third.Departments))
	}
	if third.Instructors[0].DepartmentID != third.Instructors[1].DepartmentID {
		t.Error("Both instructors should reference the same department")
	}
}
