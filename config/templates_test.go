package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/automoto/combattext/fonts"
)

const tomlTemplates = `
[[templates]]
name = "poison"
duration = 2.0
font = "small"

[templates.position]
ease = "Linear"
[[templates.position.keys]]
t = 0.0
value = [0.0, 0.0]
[[templates.position.keys]]
t = 2.0
value = [0.0, 1.0]

[templates.color]
[[templates.color.keys]]
t = 0.0
color = "#80ff00"
[[templates.color.keys]]
t = 2.0
color = "#80ff00"
alpha = 0.0

[templates.size]
[[templates.size.keys]]
t = 0.0
value = 1.0
`

func loadFonts(t *testing.T) {
	t.Helper()
	if err := fonts.LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults failed: %v", err)
	}
}

func TestDefaultTemplates(t *testing.T) {
	loadFonts(t)

	reg, err := DefaultTemplates(nil)
	if err != nil {
		t.Fatalf("DefaultTemplates failed: %v", err)
	}

	for i, name := range []string{"damage", "critical", "heal", "miss"} {
		t.Run(name, func(t *testing.T) {
			idx, ok := reg.Index(name)
			if !ok || idx != i {
				t.Fatalf("Index(%s) = %d, %v; want %d", name, idx, ok, i)
			}
			tmpl := reg.Get(idx)
			if !tmpl.Complete() {
				t.Errorf("Expected %s to be complete", name)
			}
			if tmpl.BaseDuration <= 0 {
				t.Errorf("Expected positive duration, got %f", tmpl.BaseDuration)
			}
			if end := tmpl.Color.ColorAt(tmpl.BaseDuration); end.A != 0 {
				t.Errorf("Expected %s to fade out, alpha at end = %f", name, end.A)
			}
		})
	}

	damage := reg.Get(0)
	if got := damage.Position.VectorAt(damage.BaseDuration); got != (mgl64.Vec3{0, 1.5, 0}) {
		t.Errorf("Damage end offset = %v", got)
	}
}

func TestParseTemplatesTOML(t *testing.T) {
	loadFonts(t)

	reg, err := ParseTemplates([]byte(tomlTemplates), FormatTOML, nil)
	if err != nil {
		t.Fatalf("ParseTemplates failed: %v", err)
	}
	if reg.Count() != 1 {
		t.Fatalf("Expected 1 template, got %d", reg.Count())
	}
	tmpl := reg.Get(0)
	if !tmpl.Complete() {
		t.Error("Expected complete template")
	}
	if got := tmpl.Position.VectorAt(1); got != (mgl64.Vec3{0, 0.5, 0}) {
		t.Errorf("Position at 1s = %v, want [0 0.5 0]", got)
	}
	if a := tmpl.Color.ColorAt(0).A; a != 1 {
		t.Errorf("Expected default alpha 1, got %f", a)
	}
}

func TestParseTemplatesErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"NoName", "templates:\n  - duration: 1\n"},
		{"Duplicate", "templates:\n  - name: a\n  - name: a\n"},
		{"NegativeDuration", "templates:\n  - name: a\n    duration: -1\n"},
		{"BadColor", "templates:\n  - name: a\n    color:\n      keys:\n        - {t: 0, color: red}\n"},
		{"BadVector", "templates:\n  - name: a\n    position:\n      keys:\n        - {t: 0, value: [1]}\n"},
		{"UnsortedKeys", "templates:\n  - name: a\n    size:\n      keys:\n        - {t: 1, value: 1}\n        - {t: 0, value: 2}\n"},
		{"UnknownEasing", "templates:\n  - name: a\n    size:\n      ease: Wobble\n      keys:\n        - {t: 0, value: 1}\n"},
		{"UnknownField", "templates:\n  - name: a\n    colour: {}\n"},
		{"Malformed", "templates: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTemplates([]byte(tt.yaml), FormatYAML, nil); err == nil {
				t.Error("Expected error")
			}
		})
	}

	if _, err := ParseTemplates(nil, "ini", nil); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestIncompleteTemplateIsKeptAndLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	raw := "templates:\n  - name: bare\n    duration: 1\n    font: nope\n"
	reg, err := ParseTemplates([]byte(raw), FormatYAML, zap.New(core))
	if err != nil {
		t.Fatalf("ParseTemplates failed: %v", err)
	}

	if reg.Count() != 1 {
		t.Fatalf("Expected incomplete template to be kept, got %d", reg.Count())
	}
	if reg.Get(0).Complete() {
		t.Error("Expected template without curves to be incomplete")
	}
	if logs.FilterMessage("Font not loaded").Len() != 1 {
		t.Error("Expected a warning for the missing font")
	}
	if logs.FilterMessage("Template is incomplete and will not be drawn").Len() != 1 {
		t.Error("Expected a warning for the incomplete template")
	}
}

func TestLoadTemplatesByExtension(t *testing.T) {
	loadFonts(t)
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlTemplates), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "custom.yml")
	if err := os.WriteFile(yamlPath, defaultTemplates, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		path      string
		wantCount int
		wantErr   bool
	}{
		{"TOML", tomlPath, 1, false},
		{"YAML", yamlPath, 4, false},
		{"Missing", filepath.Join(dir, "missing.yaml"), 0, true},
		{"UnknownExtension", tomlPath + ".txt", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name == "UnknownExtension" {
				if err := os.WriteFile(tt.path, []byte(tomlTemplates), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			reg, err := LoadTemplates(tt.path, nil)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplates failed: %v", err)
			}
			if reg.Count() != tt.wantCount {
				t.Errorf("Expected %d templates, got %d", tt.wantCount, reg.Count())
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name string
		cfg  LoggingConfig
		want zapcore.Level
	}{
		{"Console", LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"JSON", LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{"BadLevel", LoggingConfig{Level: "loud"}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(tt.cfg)
			if err != nil {
				t.Fatalf("NewLogger failed: %v", err)
			}
			if !log.Core().Enabled(tt.want) {
				t.Errorf("Expected %s to be enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && log.Core().Enabled(tt.want-1) {
				t.Errorf("Expected %s to be disabled", tt.want-1)
			}
		})
	}
}
