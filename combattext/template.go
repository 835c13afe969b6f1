package combattext

import (
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
)

// VectorCurve yields a world-space offset for an elapsed time in seconds.
type VectorCurve interface {
	VectorAt(t float64) mgl64.Vec3
}

// ColorCurve yields a color for an elapsed time in seconds.
type ColorCurve interface {
	ColorAt(t float64) LinearColor
}

// ScalarCurve yields a scalar (text size multiplier) for an elapsed time in seconds.
type ScalarCurve interface {
	ValueAt(t float64) float64
}

// VectorCurveFunc adapts a plain function to VectorCurve.
type VectorCurveFunc func(t float64) mgl64.Vec3

func (f VectorCurveFunc) VectorAt(t float64) mgl64.Vec3 { return f(t) }

// ColorCurveFunc adapts a plain function to ColorCurve.
type ColorCurveFunc func(t float64) LinearColor

func (f ColorCurveFunc) ColorAt(t float64) LinearColor { return f(t) }

// ScalarCurveFunc adapts a plain function to ScalarCurve.
type ScalarCurveFunc func(t float64) float64

func (f ScalarCurveFunc) ValueAt(t float64) float64 { return f(t) }

// AnimationTemplate bundles the curves, font and lifetime shared by every
// floating text spawned with it. A nil curve or font makes the template
// incomplete: its entries still age and expire but are never drawn.
type AnimationTemplate struct {
	Name         string
	Position     VectorCurve
	Color        ColorCurve
	Size         ScalarCurve
	Font         font.Face
	BaseDuration float64 // seconds
}

// Complete reports whether every curve and the font are present.
func (t AnimationTemplate) Complete() bool {
	return t.Position != nil && t.Color != nil && t.Size != nil && t.Font != nil
}

// Registry is the ordered, read-only list of animation templates.
type Registry struct {
	templates []AnimationTemplate
}

// NewRegistry creates a registry holding a copy of templates in order.
func NewRegistry(templates ...AnimationTemplate) *Registry {
	r := &Registry{templates: make([]AnimationTemplate, len(templates))}
	copy(r.templates, templates)
	return r
}

// Get returns the template at index. The index is trusted: callers must
// keep it inside [0, Count()).
func (r *Registry) Get(index int) AnimationTemplate {
	return r.templates[index]
}

// Count returns the number of templates.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	return len(r.templates)
}

// Index finds a template by name.
func (r *Registry) Index(name string) (int, bool) {
	if r == nil {
		return 0, false
	}
	for i, t := range r.templates {
		if t.Name == name {
			return i, true
		}
	}
	return 0, false
}
