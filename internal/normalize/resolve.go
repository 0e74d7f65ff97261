package normalize

// Resolve removes the transitive dependencies left by Extract: on the 2NF
// instructor table, Department depends on the instructor (a non-key path to
// the key), and on the enrollment table the course name plays the same role.
// Both become entities of their own with surrogate IDs assigned in
// first-seen order, and the carrying tables keep only the foreign key.
//
// Department name is the natural key here. Two real departments that happen
// to share a name cannot be told apart from this source data; that is a
// known limitation of the dataset, not something Resolve tries to repair.
func Resolve(in *SecondNF) (*ThirdNF, error) {
	out := &ThirdNF{Students: in.Students}

	deptID := make(map[string]int)
	for _, inst := range in.Instructors {
		id, seen := deptID[inst.Department]
		if !seen {
			id = len(deptID) + 1
			deptID[inst.Department] = id
			out.Departments = append(out.Departments, Department{DepartmentID: id, Name: inst.Department})
		}
		inst.DepartmentID = id
		inst.Department = ""
		out.Instructors = append(out.Instructors, inst)
	}

	courseID := make(map[string]int)
	for _, enr := range in.Enrollments {
		id, seen := courseID[enr.Course]
		if !seen {
			id = len(courseID) + 1
			courseID[enr.Course] = id
			out.Courses = append(out.Courses, Course{CourseID: id, Name: enr.Course})
		}
		enr.CourseID = id
		enr.Course = ""
		out.Enrollments = append(out.Enrollments, enr)
	}

	return out, nil
}
