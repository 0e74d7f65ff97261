package verify

import "fmt"

// OrphanReferenceError is a foreign key value with no row in the parent table.
type OrphanReferenceError struct {
	Table  string
	Column string
	Value  interface{}
}

func (e *OrphanReferenceError) Error() string {
	return fmt.Sprintf("%s.%s = %v references a missing parent row", e.Table, e.Column, e.Value)
}

// DuplicateKeyError is a primary-key or unique-column value that occurs on
// more than one row.
type DuplicateKeyError struct {
	Table  string
	Column string
	Value  interface{}
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s.%s = %v occurs more than once", e.Table, e.Column, e.Value)
}

// DomainViolationError is a value outside a column's declared domain.
type DomainViolationError struct {
	Table  string
	Column string
	Value  interface{}
}

func (e *DomainViolationError) Error() string {
	return fmt.Sprintf("%s.%s = %v is outside the allowed domain", e.Table, e.Column, e.Value)
}

// MissingReferenceError is a NULL in a reference column that must always
// point at a parent row.
type MissingReferenceError struct {
	Table  string
	Column string
	Count  int
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s.%s is NULL on %d row(s)", e.Table, e.Column, e.Count)
}
