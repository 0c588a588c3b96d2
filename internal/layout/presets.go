package layout

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Page format presets at 300dpi portrait, exposed to layout files as
// variables so dimensions read as `width = a4.width`.
var presets = map[string]cty.Value{
	"a4": cty.ObjectVal(map[string]cty.Value{
		"width":  cty.NumberIntVal(2480),
		"height": cty.NumberIntVal(3508),
	}),
	"letter": cty.ObjectVal(map[string]cty.Value{
		"width":  cty.NumberIntVal(2550),
		"height": cty.NumberIntVal(3300),
	}),
}

// presetContext builds the evaluation context every layout file is decoded
// against.
func presetContext() *hcl.EvalContext {
	return &hcl.EvalContext{Variables: presets}
}
