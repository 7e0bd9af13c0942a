// Package provenance enriches parameter mappings with metadata describing
// how they were produced: the version-control revision of the working tree
// and the location of the invoking script.
//
// Tagging is best-effort by design. A path that is not a repository, a
// failed query, or an already-tagged mapping all degrade to a logged no-op;
// nothing in this package ever blocks the caller's workflow with an error.
package provenance
