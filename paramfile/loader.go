package paramfile

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/paramgrid/internal/ctxlog"
	"github.com/vk/paramgrid/internal/fsutil"
	"github.com/vk/paramgrid/params"
)

// Experiment is the loaded, format-agnostic form of one `experiment` block.
type Experiment struct {
	// Name is the block label.
	Name string
	// Prefix is the optional naming prefix for derived file names.
	Prefix string
	// File is the path of the file the experiment was loaded from.
	File string
	// Params is the parameter mapping, entries in file declaration order.
	Params *params.Mapping
}

// Loader parses experiment files. One Loader may load many paths; parsed
// files are cached by the underlying HCL parser.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads every given path, descending into directories to find .hcl
// files, and returns all experiments in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*Experiment, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		isDir, err := fsutil.IsDir(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %q: %w", path, err)
		}
		if isDir {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("failed to scan %q: %w", path, err)
			}
			files = append(files, found...)
			continue
		}
		files = append(files, path)
	}
	logger.Debug("Experiment files discovered.", "count", len(files))

	var experiments []*Experiment
	for _, file := range files {
		exps, err := l.LoadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		experiments = append(experiments, exps...)
	}
	return experiments, nil
}

// LoadFile parses a single experiment file.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]*Experiment, error) {
	logger := ctxlog.FromContext(ctx)

	hclFile, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %q: %w", path, diags)
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &schema); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %q: %w", path, diags)
	}

	experiments := make([]*Experiment, 0, len(schema.Experiments))
	for _, block := range schema.Experiments {
		exp, err := l.translateExperiment(block, path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Experiment loaded.", "name", exp.Name, "file", path, "params", exp.Params.Len())
		experiments = append(experiments, exp)
	}
	return experiments, nil
}

// translateExperiment converts one decoded block into the agnostic model,
// classifying each params attribute as scalar or expansion group.
func (l *Loader) translateExperiment(block *experimentBlock, path string) (*Experiment, error) {
	if block.Params == nil {
		return nil, fmt.Errorf("experiment %q in %q has no params block", block.Name, path)
	}

	attrs, diags := block.Params.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid params block for experiment %q: %w", block.Name, diags)
	}

	// JustAttributes returns a map; restore file declaration order so the
	// mapping's insertion order, and with it the expansion order, follows
	// the file.
	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		ri, rj := ordered[i].Range.Start, ordered[j].Range.Start
		if ri.Line != rj.Line {
			return ri.Line < rj.Line
		}
		return ri.Column < rj.Column
	})

	mapping := params.NewMapping()
	for _, attr := range ordered {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("cannot evaluate parameter %q of experiment %q: %w", attr.Name, block.Name, diags)
		}
		mapping.Set(attr.Name, classify(val))
	}

	return &Experiment{
		Name:   block.Name,
		Prefix: block.Prefix,
		File:   path,
		Params: mapping,
	}, nil
}

// classify turns a tuple or list literal into an expansion group and leaves
// everything else scalar. Elements of a group stay opaque, so a nested
// tuple expands over its inner tuples, not their members.
func classify(val cty.Value) params.Value {
	ty := val.Type()
	if ty.IsTupleType() || ty.IsListType() {
		return params.Group(val.AsValueSlice()...)
	}
	return params.Scalar(val)
}
