// Package recipe loads transform chains from YAML so they can be authored and
// inspected outside Go code.
//
// A recipe lists composition steps in call order:
//
//	name: crate
//	steps:
//	  - op: translate
//	    x: 2
//	    y: 0
//	    z: -5
//	  - op: rotate_y
//	    angle: 45
//	    degrees: true
//	  - op: scale
//	    x: 0.5
//	    y: 0.5
//	    z: 0.5
//
// Build applies them to gltransform.New() in that order, which is the same as
// writing New().Translate(2, 0, -5).RotateY(...).Scale(0.5, 0.5, 0.5).
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/gltransform"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

const (
	OpTranslate = "translate"
	OpRotateX   = "rotate_x"
	OpRotateY   = "rotate_y"
	OpRotateZ   = "rotate_z"
	OpScale     = "scale"
)

var (
	ErrUnknownOp    = errors.New("unknown op")
	ErrUnknownField = errors.New("unknown field")
)

var stepFields = map[string]bool{
	"op":      true,
	"x":       true,
	"y":       true,
	"z":       true,
	"angle":   true,
	"degrees": true,
}

// Step is a single composition operation.
// X, Y and Z are used by translate and scale, Angle by the rotations.
// When decoded from YAML, scale axes left out default to 1 and translate axes to 0.
type Step struct {
	Op      string  `yaml:"op"`
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Z       float32 `yaml:"z"`
	Angle   float32 `yaml:"angle"`
	Degrees bool    `yaml:"degrees"`
}

type Recipe struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: step must be a mapping", value.Line)
	}

	op := ""
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		if !stepFields[key.Value] {
			return fmt.Errorf("line %d: %w %q", key.Line, ErrUnknownField, key.Value)
		}
		if key.Value == "op" {
			op = value.Content[i+1].Value
		}
	}

	// plain has no UnmarshalYAML, so Decode fills the fields without recursing.
	type plain Step
	raw := plain{}
	if op == OpScale {
		raw.X, raw.Y, raw.Z = 1, 1, 1
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*s = Step(raw)
	return nil
}

// Parse decodes a YAML recipe. Unknown keys are rejected.
func Parse(data []byte) (Recipe, error) {
	var r Recipe

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return Recipe{}, fmt.Errorf("recipe: unmarshal: %w", err)
	}
	return r, nil
}

// Load reads and decodes the recipe at path
func Load(path string) (Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recipe{}, fmt.Errorf("recipe: load %s: %w", path, err)
	}

	r, err := Parse(data)
	if err != nil {
		return Recipe{}, fmt.Errorf("recipe: parse %s: %w", path, err)
	}
	return r, nil
}

// Build applies the steps to an identity transform, in order.
func (r Recipe) Build() (gltransform.Transform, error) {
	t := gltransform.New()
	for i, step := range r.Steps {
		next, err := step.apply(t)
		if err != nil {
			return gltransform.Transform{}, fmt.Errorf("recipe: %s step %d: %w", r.Name, i, err)
		}
		t = next
	}
	return t, nil
}

func (s Step) radians() float32 {
	if s.Degrees {
		return mgl32.DegToRad(s.Angle)
	}
	return s.Angle
}

func (s Step) apply(t gltransform.Transform) (gltransform.Transform, error) {
	switch s.Op {
	case OpTranslate:
		return t.Translate(s.X, s.Y, s.Z), nil
	case OpRotateX:
		return t.RotateX(s.radians()), nil
	case OpRotateY:
		return t.RotateY(s.radians()), nil
	case OpRotateZ:
		return t.RotateZ(s.radians()), nil
	case OpScale:
		return t.Scale(s.X, s.Y, s.Z), nil
	default:
		return t, fmt.Errorf("%w %q", ErrUnknownOp, s.Op)
	}
}
