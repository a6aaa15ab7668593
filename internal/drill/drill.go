// Package drill loads and runs mnemonic drills.
//
// A drill is a named list of column transitions, optionally with the
// mnemonic the learner expects each one to use. Drills are authored as YAML
// or as CUE; CUE drills are unified with an embedded schema so that shape
// errors are reported with positions.
package drill

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Drill is a named sequence of transitions.
type Drill struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Steps       []Step `yaml:"steps" json:"steps"`
}

// Step is one column change. Expect, when set, is the mnemonic the
// classifier must report.
type Step struct {
	From   int    `yaml:"from" json:"from"`
	To     int    `yaml:"to" json:"to"`
	Expect string `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Load reads a drill from a .yaml, .yml or .cue file.
func Load(path string) (*Drill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read drill file: %w", err)
	}

	var d *Drill
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		d, err = ParseYAML(data)
	case ".cue":
		d, err = ParseCUE(filepath.Base(path), data)
	default:
		return nil, fmt.Errorf("unsupported drill file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ParseYAML decodes a YAML drill, rejecting unknown fields.
func ParseYAML(data []byte) (*Drill, error) {
	var d Drill
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validate(&d); err != nil {
		return nil, fmt.Errorf("invalid drill: %w", err)
	}
	return &d, nil
}

// ParseCUE compiles a CUE drill and checks it against the #Drill schema.
func ParseCUE(filename string, data []byte) (*Drill, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("building drill schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling CUE: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Drill")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid drill: %w", err)
	}

	var d Drill
	if err := unified.Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding drill: %w", err)
	}
	if err := validate(&d); err != nil {
		return nil, fmt.Errorf("invalid drill: %w", err)
	}
	return &d, nil
}

// validate checks required fields for drills from either format.
func validate(d *Drill) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(d.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	return nil
}
