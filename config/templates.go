package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/automoto/combattext/combattext"
	"github.com/automoto/combattext/curves"
	"github.com/automoto/combattext/fonts"
)

//go:embed templates/default.yaml
var defaultTemplates []byte

// Template file formats
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var ErrUnknownFormat = errors.New("unknown template format")

type templateFile struct {
	Templates []templateSpec `yaml:"templates" toml:"templates"`
}

type templateSpec struct {
	Name     string          `yaml:"name" toml:"name"`
	Duration float64         `yaml:"duration" toml:"duration"`
	Font     string          `yaml:"font" toml:"font"`
	Position vectorCurveSpec `yaml:"position" toml:"position"`
	Color    colorCurveSpec  `yaml:"color" toml:"color"`
	Size     scalarCurveSpec `yaml:"size" toml:"size"`
}

type vectorCurveSpec struct {
	Ease string `yaml:"ease" toml:"ease"`
	Keys []struct {
		T     float64   `yaml:"t" toml:"t"`
		Value []float64 `yaml:"value" toml:"value"`
	} `yaml:"keys" toml:"keys"`
}

type colorCurveSpec struct {
	Ease string `yaml:"ease" toml:"ease"`
	Keys []struct {
		T     float64  `yaml:"t" toml:"t"`
		Color string   `yaml:"color" toml:"color"`
		Alpha *float64 `yaml:"alpha" toml:"alpha"` // defaults to 1
	} `yaml:"keys" toml:"keys"`
}

type scalarCurveSpec struct {
	Ease string `yaml:"ease" toml:"ease"`
	Keys []struct {
		T     float64 `yaml:"t" toml:"t"`
		Value float64 `yaml:"value" toml:"value"`
	} `yaml:"keys" toml:"keys"`
}

// LoadTemplates reads a template file, picking the format from its extension.
func LoadTemplates(path string, log *zap.Logger) (*combattext.Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates %s: %w", path, err)
	}
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		return nil, fmt.Errorf("templates %s: %w", path, ErrUnknownFormat)
	}
	reg, err := ParseTemplates(raw, format, log)
	if err != nil {
		return nil, fmt.Errorf("templates %s: %w", path, err)
	}
	return reg, nil
}

// DefaultTemplates returns the built-in damage, critical, heal and miss set.
func DefaultTemplates(log *zap.Logger) (*combattext.Registry, error) {
	return ParseTemplates(defaultTemplates, FormatYAML, log)
}

// ParseTemplates builds a registry in file order. Templates missing a curve
// or font are kept and logged; the manager never draws them.
func ParseTemplates(raw []byte, format string, log *zap.Logger) (*combattext.Registry, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var f templateFile
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(raw), &f); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	seen := make(map[string]bool, len(f.Templates))
	templates := make([]combattext.AnimationTemplate, 0, len(f.Templates))
	for i, spec := range f.Templates {
		if spec.Name == "" {
			return nil, fmt.Errorf("template %d has no name", i)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate template %q", spec.Name)
		}
		seen[spec.Name] = true

		tmpl, err := buildTemplate(spec, log)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", spec.Name, err)
		}
		if !tmpl.Complete() {
			log.Warn("Template is incomplete and will not be drawn", zap.String("template", spec.Name))
		}
		templates = append(templates, tmpl)
	}
	return combattext.NewRegistry(templates...), nil
}

func buildTemplate(spec templateSpec, log *zap.Logger) (combattext.AnimationTemplate, error) {
	tmpl := combattext.AnimationTemplate{
		Name:         spec.Name,
		BaseDuration: spec.Duration,
	}
	if spec.Duration < 0 {
		return tmpl, fmt.Errorf("negative duration %g", spec.Duration)
	}

	if len(spec.Position.Keys) > 0 {
		keys := make([]curves.VectorKey, len(spec.Position.Keys))
		for i, k := range spec.Position.Keys {
			v, err := toVec3(k.Value)
			if err != nil {
				return tmpl, fmt.Errorf("position key %d: %w", i, err)
			}
			keys[i] = curves.VectorKey{Time: k.T, Value: v}
		}
		c, err := curves.NewVector(keys, spec.Position.Ease)
		if err != nil {
			return tmpl, fmt.Errorf("position: %w", err)
		}
		tmpl.Position = c
	}

	if len(spec.Color.Keys) > 0 {
		keys := make([]curves.ColorKey, len(spec.Color.Keys))
		for i, k := range spec.Color.Keys {
			c, err := curves.ParseHex(k.Color)
			if err != nil {
				return tmpl, fmt.Errorf("color key %d: %w", i, err)
			}
			alpha := 1.0
			if k.Alpha != nil {
				alpha = *k.Alpha
			}
			keys[i] = curves.ColorKey{Time: k.T, Color: c, Alpha: alpha}
		}
		c, err := curves.NewColor(keys, spec.Color.Ease)
		if err != nil {
			return tmpl, fmt.Errorf("color: %w", err)
		}
		tmpl.Color = c
	}

	if len(spec.Size.Keys) > 0 {
		keys := make([]curves.ScalarKey, len(spec.Size.Keys))
		for i, k := range spec.Size.Keys {
			keys[i] = curves.ScalarKey{Time: k.T, Value: k.Value}
		}
		c, err := curves.NewScalar(keys, spec.Size.Ease)
		if err != nil {
			return tmpl, fmt.Errorf("size: %w", err)
		}
		tmpl.Size = c
	}

	name := fonts.FontName(spec.Font)
	if name == "" {
		name = fonts.Regular
	}
	if face, ok := fonts.Lookup(name); ok {
		tmpl.Font = face
	} else {
		log.Warn("Font not loaded", zap.String("template", spec.Name), zap.String("font", string(name)))
	}

	return tmpl, nil
}

// toVec3 accepts [x, y] or [x, y, z].
func toVec3(v []float64) (mgl64.Vec3, error) {
	switch len(v) {
	case 2:
		return mgl64.Vec3{v[0], v[1], 0}, nil
	case 3:
		return mgl64.Vec3{v[0], v[1], v[2]}, nil
	}
	return mgl64.Vec3{}, fmt.Errorf("expected 2 or 3 components, got %d", len(v))
}
