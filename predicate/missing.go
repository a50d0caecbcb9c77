package predicate

// MissingKey marks a key that is present on only one side of a comparison.
// All MissingKey values are equal to each other and to nothing else.
type MissingKey struct{}

// Missing is the MissingKey value used in reports.
var Missing = MissingKey{}

// String implements fmt.Stringer.
func (MissingKey) String() string {
	return "<MissingKey>"
}
