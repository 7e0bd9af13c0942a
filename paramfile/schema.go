package paramfile

import "github.com/hashicorp/hcl/v2"

// paramsBlock holds the raw body of a `params` block; its attributes are
// evaluated one by one so tuple literals can be classified as groups.
type paramsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// experimentBlock is the HCL shape of a single `experiment` block.
type experimentBlock struct {
	Name   string       `hcl:"name,label"`
	Prefix string       `hcl:"prefix,optional"`
	Params *paramsBlock `hcl:"params,block"`
}

// fileSchema is the top-level structure of an experiment file.
type fileSchema struct {
	Experiments []*experimentBlock `hcl:"experiment,block"`
}
