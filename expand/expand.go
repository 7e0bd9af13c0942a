package expand

import (
	"fmt"

	"github.com/vk/paramgrid/params"
)

// InvalidValueError reports a mapping entry holding a zero params.Value,
// i.e. one that was never built through params.Scalar or params.Group. This
// is a contract violation on the caller's side and is the only failure the
// expander surfaces as an error.
type InvalidValueError struct {
	Key string
}

// Error implements the error interface for InvalidValueError.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("parameter %q holds an unconstructed value; build it with params.Scalar or params.Group", e.Key)
}

// All expands the mapping into the Cartesian product over its group-valued
// entries. Scalar entries are carried into every output unchanged. The input
// is never mutated and each output mapping is independent of the others.
//
// Ordering is row-major over the group keys in mapping insertion order: the
// first group key varies slowest, the last varies fastest. Repeated calls on
// an unmodified mapping yield identical sequences.
//
// A mapping with no groups expands to exactly one output, the scalar-only
// mapping itself. Any empty group absorbs the product: the result is empty.
func All(m *params.Mapping) ([]*params.Mapping, error) {
	groups, err := groupKeys(m)
	if err != nil {
		return nil, err
	}

	total, err := Count(m)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return []*params.Mapping{}, nil
	}

	elems := make([][]params.Value, len(groups))
	for i, key := range groups {
		v, _ := m.Get(key)
		raw := v.Elements()
		choices := make([]params.Value, len(raw))
		for j, e := range raw {
			choices[j] = params.Scalar(e)
		}
		elems[i] = choices
	}

	out := make([]*params.Mapping, 0, total)
	idx := make([]int, len(groups))
	for {
		point := params.NewMapping()
		g := 0
		for _, key := range m.Keys() {
			v, _ := m.Get(key)
			if v.IsGroup() {
				point.Set(key, elems[g][idx[g]])
				g++
				continue
			}
			point.Set(key, v)
		}
		out = append(out, point)

		// Odometer increment, last group key fastest.
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(elems[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return out, nil
}

// Count returns the exact number of mappings All would produce: the product
// of all group lengths, 1 when there are no groups, 0 when any group is
// empty. It runs in time linear in the number of entries and never builds
// the expansion.
func Count(m *params.Mapping) (int, error) {
	n := 1
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		if !v.IsValid() {
			return 0, &InvalidValueError{Key: key}
		}
		if v.IsGroup() {
			n *= v.Len()
		}
	}
	return n, nil
}

// groupKeys returns the group-valued keys in mapping insertion order,
// validating every entry on the way.
func groupKeys(m *params.Mapping) ([]string, error) {
	var keys []string
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		if !v.IsValid() {
			return nil, &InvalidValueError{Key: key}
		}
		if v.IsGroup() {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
