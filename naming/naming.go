package naming

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/paramgrid/params"
)

// Options controls how a mapping is rendered into a name.
type Options struct {
	// Prefix is prepended to the name, joined with Connector.
	Prefix string
	// Suffix is appended to the name after a dot, e.g. "jld2" or "csv".
	Suffix string
	// Connector joins the key=value segments. Defaults to "_".
	Connector string
	// Equals joins each key to its rendered value. Defaults to "=".
	Equals string
	// Include, when non-empty, restricts the name to exactly these keys.
	Include []string
	// Exclude drops the listed keys. Applied after Include.
	Exclude []string
	// SigDigits rounds numeric values to this many significant digits.
	// Zero keeps full precision.
	SigDigits int
	// KeepOrder renders keys in mapping insertion order instead of the
	// default alphabetical order.
	KeepOrder bool
}

// DefaultOptions returns the canonical rendering options: alphabetical
// keys, "_" connector, "=" separator, no prefix or suffix.
func DefaultOptions() Options {
	return Options{Connector: "_", Equals: "="}
}

// Name renders the mapping as a deterministic string of the form
//
//	prefix_k1=v1_k2=v2.suffix
//
// Group-valued entries and values with no string form (null, unknown,
// object-typed) are skipped: names are meant for fully expanded mappings,
// and an unrenderable value must not poison the whole name. Identical
// mappings and options always produce the identical name.
func Name(m *params.Mapping, opts Options) (string, error) {
	if m == nil {
		return "", fmt.Errorf("cannot derive a name from a nil mapping")
	}
	if opts.Connector == "" {
		opts.Connector = "_"
	}
	if opts.Equals == "" {
		opts.Equals = "="
	}

	keys := m.Keys()
	if len(opts.Include) > 0 {
		keys = intersect(keys, opts.Include)
	}
	if len(opts.Exclude) > 0 {
		keys = subtract(keys, opts.Exclude)
	}
	if !opts.KeepOrder {
		sort.Strings(keys)
	}

	var segments []string
	if opts.Prefix != "" {
		segments = append(segments, opts.Prefix)
	}
	for _, key := range keys {
		v, _ := m.Get(key)
		if !v.IsValid() {
			return "", fmt.Errorf("parameter %q holds an unconstructed value", key)
		}
		if v.IsGroup() {
			continue
		}
		rendered, ok := FormatValue(v.Scalar(), opts.SigDigits)
		if !ok {
			continue
		}
		segments = append(segments, key+opts.Equals+rendered)
	}

	name := strings.Join(segments, opts.Connector)
	if opts.Suffix != "" {
		name += "." + opts.Suffix
	}
	return name, nil
}

// FormatValue stringifies a single scalar cty value the way Name renders
// it. Tuple and list values render as their elements joined with "-". The
// second return is false for values that have no sensible string form.
func FormatValue(v cty.Value, sigDigits int) (string, bool) {
	if v == cty.NilVal || v.IsNull() || !v.IsKnown() {
		return "", false
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), true
	case ty == cty.Number:
		return renderNumber(v, sigDigits), true
	case ty == cty.Bool:
		if v.True() {
			return "true", true
		}
		return "false", true
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var parts []string
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			p, ok := FormatValue(ev, sigDigits)
			if !ok {
				return "", false
			}
			parts = append(parts, p)
		}
		return strings.Join(parts, "-"), true
	default:
		return "", false
	}
}

// renderNumber formats a cty number with the smallest representation that
// round-trips, optionally rounded to sigDigits significant digits.
func renderNumber(v cty.Value, sigDigits int) string {
	f := v.AsBigFloat()
	if sigDigits > 0 {
		return f.Text('g', sigDigits)
	}
	return f.Text('g', -1)
}

// intersect keeps the keys listed in wanted, preserving the order of keys.
func intersect(keys, wanted []string) []string {
	set := make(map[string]struct{}, len(wanted))
	for _, k := range wanted {
		set[k] = struct{}{}
	}
	var out []string
	for _, k := range keys {
		if _, ok := set[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// subtract drops the keys listed in unwanted, preserving the order of keys.
func subtract(keys, unwanted []string) []string {
	set := make(map[string]struct{}, len(unwanted))
	for _, k := range unwanted {
		set[k] = struct{}{}
	}
	var out []string
	for _, k := range keys {
		if _, ok := set[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
