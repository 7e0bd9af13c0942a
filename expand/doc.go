// Package expand turns a parameter mapping with group-valued entries into
// the full Cartesian product of concrete, scalar-only mappings, plus a
// counting function that predicts the product size without materializing it.
package expand
