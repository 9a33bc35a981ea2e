package output

import "github.com/pyxgen/pyxgen/internal/engine"

// ConvertOutput is the JSON shape of a convert result.
type ConvertOutput struct {
	Source  string                `json:"source,omitempty"`
	Dialect string                `json:"dialect"`
	Code    string                `json:"code"`
	Stats   ConvertStats          `json:"stats"`
	Funcs   []engine.FunctionInfo `json:"functions,omitempty"`
}

// ConvertStats summarizes what the converter saw in the source.
type ConvertStats struct {
	Functions     int `json:"functions"`
	Statements    int `json:"statements"`
	RawStatements int `json:"raw_statements"`
}

// BuildOutput is the JSON shape of a build result.
type BuildOutput struct {
	Source    string `json:"source"`
	OutPath   string `json:"out_path"`
	SetupPath string `json:"setup_path"`
}

// InspectOutput is the JSON shape of an inspect result.
type InspectOutput struct {
	Source  string                `json:"source"`
	Dialect string                `json:"dialect"`
	Funcs   []engine.FunctionInfo `json:"functions"`
}
