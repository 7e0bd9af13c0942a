package params

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// valueKind discriminates the two constructed forms of a Value. The zero
// kind marks a Value that was never built through a constructor.
type valueKind int

const (
	kindInvalid valueKind = iota
	kindScalar
	kindGroup
)

// Value is a single parameter value: either a scalar or an expansion group.
// The zero Value is invalid; use Scalar or Group to build one.
type Value struct {
	kind  valueKind
	one   cty.Value
	elems []cty.Value
}

// Scalar wraps a single cty.Value as a non-expandable parameter value. The
// wrapped value may itself be of tuple or list type; it is still treated as
// one opaque constant.
func Scalar(v cty.Value) Value {
	return Value{kind: kindScalar, one: v}
}

// Group builds an expansion group from the given elements, preserving their
// order. The expander produces one output mapping per element. An empty
// group is legal and absorbs the whole product to zero.
func Group(elems ...cty.Value) Value {
	copied := make([]cty.Value, len(elems))
	copy(copied, elems)
	return Value{kind: kindGroup, elems: copied}
}

// IsValid reports whether the Value was built through a constructor.
func (v Value) IsValid() bool {
	return v.kind != kindInvalid
}

// IsGroup reports whether the Value is an expansion group.
func (v Value) IsGroup() bool {
	return v.kind == kindGroup
}

// Scalar returns the wrapped scalar value. It returns cty.NilVal when the
// Value is a group or invalid.
func (v Value) Scalar() cty.Value {
	if v.kind != kindScalar {
		return cty.NilVal
	}
	return v.one
}

// Elements returns a copy of the group's elements in order. It returns nil
// when the Value is not a group.
func (v Value) Elements() []cty.Value {
	if v.kind != kindGroup {
		return nil
	}
	out := make([]cty.Value, len(v.elems))
	copy(out, v.elems)
	return out
}

// Len returns the number of group elements, or zero for non-group values.
func (v Value) Len() int {
	return len(v.elems)
}

// Equal compares two Values for identical kind and content. Scalars compare
// with cty's RawEquals, so unknown and null values compare structurally.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case kindScalar:
		return v.one.RawEquals(other.one)
	case kindGroup:
		if len(v.elems) != len(other.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].RawEquals(other.elems[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// GoString renders the Value for debug output and test failure messages.
func (v Value) GoString() string {
	switch v.kind {
	case kindScalar:
		return fmt.Sprintf("params.Scalar(%#v)", v.one)
	case kindGroup:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			parts[i] = fmt.Sprintf("%#v", e)
		}
		return fmt.Sprintf("params.Group(%s)", strings.Join(parts, ", "))
	default:
		return "params.Value{}"
	}
}
