// Package paramfile loads experiment definitions from HCL files. An
// experiment names a parameter mapping and an optional naming prefix:
//
//	experiment "diffusion" {
//	  prefix = "run"
//	  params {
//	    a   = [1, 2]
//	    b   = 4
//	    run = ["bi", "tri"]
//	  }
//	}
//
// Attributes bound to a tuple or list literal become expansion groups; every
// other value is a scalar. That narrow rule is deliberate: strings and other
// iterables never fan out by accident.
package paramfile
