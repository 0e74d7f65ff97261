package dataset

// Dictionaries for the random dataset generator. Departments map to a fixed
// set of courses and instructors so generated data keeps the functional
// dependencies intact: a course always belongs to one department, an
// instructor always teaches in one department.

var GradeLetters = []string{"A", "B", "C", "D", "F"}

var departmentCourses = map[string][]string{
	"Science":     {"Math", "Physics", "Chemistry", "Biology", "Astronomy", "Geology"},
	"Engineering": {"Statics", "Thermodynamics", "Circuits", "Materials", "Robotics"},
	"Humanities":  {"History", "Philosophy", "Literature", "Linguistics"},
	"Business":    {"Accounting", "Marketing", "Finance", "Economics"},
	"Arts":        {"Painting", "Sculpture", "Music Theory", "Film Studies"},
}

var departmentNames = []string{"Science", "Engineering", "Humanities", "Business", "Arts"}
