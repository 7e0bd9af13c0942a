// Package params defines the value model shared by the expansion and
// provenance components: a parameter mapping whose entries are either plain
// scalars or expansion groups.
//
// The scalar/group distinction is fixed at construction time via the Scalar
// and Group constructors rather than probed from the runtime type of the
// value. A group is the only thing the expander fans out over; a scalar of
// tuple or list type stays a single opaque value.
package params
