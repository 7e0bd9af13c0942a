// Package naming derives a deterministic, human-readable name from a
// parameter mapping, typically to label an output file of one simulation
// configuration. Which keys participate, how values are stringified, and
// the surrounding prefix/suffix are all controlled through Options.
package naming
