// Package normalize implements the UNF → 1NF → 2NF → 3NF transformation
// stages. Each stage is a pure in-memory function: Decompose flattens the
// multi-valued source lists, Extract splits out entities whose attributes
// depend on a full key, Resolve extracts transitively dependent attributes
// into their own entities.
package normalize

// FlatRow is one 1NF row: one (student, course) pair per row, with the
// student's name and the course's instructor/department/grade repeated
// inline. The redundancy is the point — it is what 2NF/3NF remove.
type FlatRow struct {
	StudentID  int
	Name       string
	Course     string
	Instructor string
	Department string
	Grade      string
}

type Student struct {
	StudentID int
	Name      string
}

// Instructor carries the department name inline through 2NF; Resolve swaps
// it for a DepartmentID foreign key.
type Instructor struct {
	InstructorID int
	Name         string
	Department   string // empty after Resolve
	DepartmentID int    // zero until Resolve
}

type Department struct {
	DepartmentID int
	Name         string
}

type Course struct {
	CourseID int
	Name     string
}

// Enrollment links a student to a course. Through 2NF the course is still a
// name string; Resolve swaps it for a CourseID foreign key.
type Enrollment struct {
	EnrollmentID int
	StudentID    int
	Course       string // empty after Resolve
	CourseID     int    // zero until Resolve
	InstructorID int
	Grade        string
}

// SecondNF is the output of Extract: entities split so that every non-key
// attribute depends on its table's entire key. Instructors still carry the
// department name inline (a transitive dependency left for Resolve).
type SecondNF struct {
	Students    []Student
	Instructors []Instructor
	Enrollments []Enrollment
}

// ThirdNF is the output of Resolve: departments and courses promoted to
// entities of their own, referenced by surrogate keys.
type ThirdNF struct {
	Students    []Student
	Instructors []Instructor
	Departments []Department
	Courses     []Course
	Enrollments []Enrollment
}
