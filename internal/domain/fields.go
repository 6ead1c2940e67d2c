package domain

// FieldAssignment is one column assignment of a partial update. Services build
// assignments in a fixed per-entity column order after validating the caller's
// field names, so repositories can bind them positionally.
type FieldAssignment struct {
	Column string
	Value  any
}
