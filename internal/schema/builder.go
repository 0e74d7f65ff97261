package schema

import (
	"norm-lab/internal/dataset"
	"norm-lab/internal/normalize"
)

// Stage table names. Each normal form gets its own prefix so all three
// stages can be materialized side by side in one database.
const (
	Table1NFEnrollment = "nf1_enrollment_flat"
	Table2NFStudent    = "nf2_student"
	Table2NFInstructor = "nf2_instructor"
	Table2NFEnrollment = "nf2_enrollment"
	Table3NFStudent    = "nf3_student"
	Table3NFDepartment = "nf3_department"
	Table3NFInstructor = "nf3_instructor"
	Table3NFCourse     = "nf3_course"
	Table3NFEnrollment = "nf3_enrollment"
)

// StageTableNames returns every table name the stages may create, parents
// first; the clean command drops them in reverse.
func StageTableNames() []string {
	return []string{
		Table1NFEnrollment,
		Table2NFStudent, Table2NFInstructor, Table2NFEnrollment,
		Table3NFStudent, Table3NFDepartment, Table3NFInstructor, Table3NFCourse, Table3NFEnrollment,
	}
}

// Definitions1NF returns the 1NF table definitions without row data, for
// verifying an already-materialized stage.
func Definitions1NF() []*Table {
	// The flat table's key is the composite (student_id, course); everything
	// else hangs off it redundantly, which is what this stage exhibits.
	return []*Table{{
		Name: Table1NFEnrollment,
		Columns: []*Column{
			{Name: "student_id", Type: TypeInt, IsPK: true},
			{Name: "name", Type: TypeText, Length: 100},
			{Name: "course", Type: TypeText, Length: 100, IsPK: true},
			{Name: "instructor", Type: TypeText, Length: 100},
			{Name: "department", Type: TypeText, Length: 100},
			{Name: "grade", Type: TypeText, Length: 1, EnumValues: dataset.GradeLetters},
		},
	}}
}

// Definitions2NF returns the 2NF table definitions: students and
// instructors extracted, enrollment referencing them. The course is still a
// plain string and the instructor still carries its department name inline.
func Definitions2NF() []*Table {
	return []*Table{
		{
			Name: Table2NFEnrollment,
			Columns: []*Column{
				{Name: "enrollment_id", Type: TypeInt, IsPK: true},
				{Name: "student_id", Type: TypeInt},
				{Name: "course", Type: TypeText, Length: 100},
				{Name: "instructor_id", Type: TypeInt},
				{Name: "grade", Type: TypeText, Length: 1, EnumValues: dataset.GradeLetters},
			},
			ForeignKeys: []*ForeignKey{
				{Column: "student_id", RefTable: Table2NFStudent, RefColumn: "student_id"},
				{Column: "instructor_id", RefTable: Table2NFInstructor, RefColumn: "instructor_id"},
			},
			Dependencies: []string{Table2NFStudent, Table2NFInstructor},
		},
		{
			Name: Table2NFStudent,
			Columns: []*Column{
				{Name: "student_id", Type: TypeInt, IsPK: true},
				{Name: "name", Type: TypeText, Length: 100},
			},
		},
		{
			Name: Table2NFInstructor,
			Columns: []*Column{
				{Name: "instructor_id", Type: TypeInt, IsPK: true},
				{Name: "name", Type: TypeText, Length: 100, IsUnique: true},
				{Name: "department", Type: TypeText, Length: 100},
			},
		},
	}
}

// Definitions3NF returns the full 3NF table definitions with department and
// course as first-class entities. Department and course names are unique by
// construction (the resolver keys on them), so the columns are UNIQUE.
func Definitions3NF() []*Table {
	return []*Table{
		{
			Name: Table3NFEnrollment,
			Columns: []*Column{
				{Name: "enrollment_id", Type: TypeInt, IsPK: true},
				{Name: "student_id", Type: TypeInt},
				{Name: "course_id", Type: TypeInt},
				{Name: "instructor_id", Type: TypeInt},
				{Name: "grade", Type: TypeText, Length: 1, EnumValues: dataset.GradeLetters},
			},
			ForeignKeys: []*ForeignKey{
				{Column: "student_id", RefTable: Table3NFStudent, RefColumn: "student_id"},
				{Column: "course_id", RefTable: Table3NFCourse, RefColumn: "course_id"},
				{Column: "instructor_id", RefTable: Table3NFInstructor, RefColumn: "instructor_id"},
			},
			Dependencies: []string{Table3NFStudent, Table3NFCourse, Table3NFInstructor},
		},
		{
			Name: Table3NFStudent,
			Columns: []*Column{
				{Name: "student_id", Type: TypeInt, IsPK: true},
				{Name: "name", Type: TypeText, Length: 100},
			},
		},
		{
			Name: Table3NFDepartment,
			Columns: []*Column{
				{Name: "department_id", Type: TypeInt, IsPK: true},
				{Name: "name", Type: TypeText, Length: 100, IsUnique: true},
			},
		},
		{
			Name: Table3NFInstructor,
			Columns: []*Column{
				{Name: "instructor_id", Type: TypeInt, IsPK: true},
				{Name: "name", Type: TypeText, Length: 100, IsUnique: true},
				{Name: "department_id", Type: TypeInt},
			},
			ForeignKeys: []*ForeignKey{
				{Column: "department_id", RefTable: Table3NFDepartment, RefColumn: "department_id"},
			},
			Dependencies: []string{Table3NFDepartment},
		},
		{
			Name: Table3NFCourse,
			Columns: []*Column{
				{Name: "course_id", Type: TypeInt, IsPK: true},
				{Name: "name", Type: TypeText, Length: 100, IsUnique: true},
			},
		},
	}
}

// Build1NF produces the populated 1NF table.
func Build1NF(rows []normalize.FlatRow) []*Table {
	tables := Definitions1NF()
	t := tables[0]
	for _, r := range rows {
		t.Rows = append(t.Rows, []interface{}{r.StudentID, r.Name, r.Course, r.Instructor, r.Department, r.Grade})
	}
	return tables
}

// Build2NF produces the populated 2NF table set.
func Build2NF(nf *normalize.SecondNF) []*Table {
	tables := Definitions2NF()
	byName := index(tables)

	for _, e := range nf.Enrollments {
		byName[Table2NFEnrollment].Rows = append(byName[Table2NFEnrollment].Rows,
			[]interface{}{e.EnrollmentID, e.StudentID, e.Course, e.InstructorID, e.Grade})
	}
	for _, s := range nf.Students {
		byName[Table2NFStudent].Rows = append(byName[Table2NFStudent].Rows,
			[]interface{}{s.StudentID, s.Name})
	}
	for _, i := range nf.Instructors {
		byName[Table2NFInstructor].Rows = append(byName[Table2NFInstructor].Rows,
			[]interface{}{i.InstructorID, i.Name, i.Department})
	}
	return tables
}

// Build3NF produces the populated 3NF table set.
func Build3NF(nf *normalize.ThirdNF) []*Table {
	tables := Definitions3NF()
	byName := index(tables)

	for _, e := range nf.Enrollments {
		byName[Table3NFEnrollment].Rows = append(byName[Table3NFEnrollment].Rows,
			[]interface{}{e.EnrollmentID, e.StudentID, e.CourseID, e.InstructorID, e.Grade})
	}
	for _, s := range nf.Students {
		byName[Table3NFStudent].Rows = append(byName[Table3NFStudent].Rows,
			[]interface{}{s.StudentID, s.Name})
	}
	for _, d := range nf.Departments {
		byName[Table3NFDepartment].Rows = append(byName[Table3NFDepartment].Rows,
			[]interface{}{d.DepartmentID, d.Name})
	}
	for _, i := range nf.Instructors {
		byName[Table3NFInstructor].Rows = append(byName[Table3NFInstructor].Rows,
			[]interface{}{i.InstructorID, i.Name, i.DepartmentID})
	}
	for _, c := range nf.Courses {
		byName[Table3NFCourse].Rows = append(byName[Table3NFCourse].Rows,
			[]interface{}{c.CourseID, c.Name})
	}
	return tables
}

func index(tables []*Table) map[string]*Table {
	m := make(map[string]*Table, len(tables))
	for _, t := range tables {
		m[t.Name] = t
	}
	return m
}
