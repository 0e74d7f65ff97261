package normalize

import "fmt"

// AlignmentError reports an UnnormalizedRecord whose multi-valued lists do
// not have equal lengths, so the positional course/instructor/department/grade
// pairing is undefined.
type AlignmentError struct {
	StudentID int
	Field     string // the list that disagrees with Courses
	Want      int    // len(Courses)
	Got       int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("record %d: %s list has %d entries, expected %d to match courses",
		e.StudentID, e.Field, e.Got, e.Want)
}

// InconsistentAttributeError reports a functional-dependency violation in the
// source data: the same key value maps to two different values of a dependent
// attribute (e.g. one StudentID with two Names).
type InconsistentAttributeError struct {
	Entity    string
	Key       string
	Attribute string
	Have      string
	Got       string
}

func (e *InconsistentAttributeError) Error() string {
	return fmt.Sprintf("%s %q: %s is %q but was previously %q",
		e.Entity, e.Key, e.Attribute, e.Got, e.Have)
}
