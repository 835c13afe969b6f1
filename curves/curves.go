// Package curves implements keyframed animation curves for floating text.
// Keys are placed at absolute times in seconds and each segment between two
// keys is shaped by a named easing function.
package curves

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"

	"github.com/automoto/combattext/combattext"
)

var easings = map[string]ease.TweenFunc{
	"Linear":     ease.Linear,
	"InQuad":     ease.InQuad,
	"OutQuad":    ease.OutQuad,
	"InOutQuad":  ease.InOutQuad,
	"InCubic":    ease.InCubic,
	"OutCubic":   ease.OutCubic,
	"InOutCubic": ease.InOutCubic,
	"InQuart":    ease.InQuart,
	"OutQuart":   ease.OutQuart,
	"InSine":     ease.InSine,
	"OutSine":    ease.OutSine,
	"InOutSine":  ease.InOutSine,
	"InExpo":     ease.InExpo,
	"OutExpo":    ease.OutExpo,
	"InCirc":     ease.InCirc,
	"OutCirc":    ease.OutCirc,
	"InBack":     ease.InBack,
	"OutBack":    ease.OutBack,
	"InOutBack":  ease.InOutBack,
	"InBounce":   ease.InBounce,
	"OutBounce":  ease.OutBounce,
	"InElastic":  ease.InElastic,
	"OutElastic": ease.OutElastic,
}

var ErrNoKeys = errors.New("curve has no keys")

// Easing looks up an easing function by name. An empty name is Linear.
func Easing(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// timeline maps a time to the key segment containing it and the eased
// progress through that segment. It is read-only after construction so a
// curve can be evaluated from any number of goroutines.
type timeline struct {
	times []float64
	ease  ease.TweenFunc
}

func newTimeline(times []float64, easing string) (timeline, error) {
	if len(times) == 0 {
		return timeline{}, ErrNoKeys
	}
	fn, err := Easing(easing)
	if err != nil {
		return timeline{}, err
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return timeline{}, fmt.Errorf("key %d at %gs is not after key %d at %gs", i, times[i], i-1, times[i-1])
		}
	}
	return timeline{times: times, ease: fn}, nil
}

// locate returns the segment start index and eased progress for t. Times
// outside the keys clamp to the first or last key with zero progress.
func (tl timeline) locate(t float64) (int, float64) {
	last := len(tl.times) - 1
	if t <= tl.times[0] {
		return 0, 0
	}
	if t >= tl.times[last] {
		return last, 0
	}
	i := sort.SearchFloat64s(tl.times, t)
	// times[i-1] < t <= times[i]
	i--
	d := tl.times[i+1] - tl.times[i]
	return i, float64(tl.ease(float32(t-tl.times[i]), 0, 1, float32(d)))
}

func lerp(a, b, r float64) float64 {
	return a + (b-a)*r
}

// ScalarKey is a scalar value at a time.
type ScalarKey struct {
	Time  float64
	Value float64
}

// Scalar is a keyframed scalar curve.
type Scalar struct {
	tl     timeline
	values []float64
}

var _ combattext.ScalarCurve = (*Scalar)(nil)

// NewScalar builds a curve from keys sorted by strictly increasing time.
func NewScalar(keys []ScalarKey, easing string) (*Scalar, error) {
	times := make([]float64, len(keys))
	values := make([]float64, len(keys))
	for i, k := range keys {
		times[i], values[i] = k.Time, k.Value
	}
	tl, err := newTimeline(times, easing)
	if err != nil {
		return nil, err
	}
	return &Scalar{tl: tl, values: values}, nil
}

func (c *Scalar) ValueAt(t float64) float64 {
	i, r := c.tl.locate(t)
	if r == 0 {
		return c.values[i]
	}
	return lerp(c.values[i], c.values[i+1], r)
}

// VectorKey is a vector value at a time.
type VectorKey struct {
	Time  float64
	Value mgl64.Vec3
}

// Vector is a keyframed 3D vector curve.
type Vector struct {
	tl     timeline
	values []mgl64.Vec3
}

var _ combattext.VectorCurve = (*Vector)(nil)

func NewVector(keys []VectorKey, easing string) (*Vector, error) {
	times := make([]float64, len(keys))
	values := make([]mgl64.Vec3, len(keys))
	for i, k := range keys {
		times[i], values[i] = k.Time, k.Value
	}
	tl, err := newTimeline(times, easing)
	if err != nil {
		return nil, err
	}
	return &Vector{tl: tl, values: values}, nil
}

func (c *Vector) VectorAt(t float64) mgl64.Vec3 {
	i, r := c.tl.locate(t)
	if r == 0 {
		return c.values[i]
	}
	a, b := c.values[i], c.values[i+1]
	return a.Add(b.Sub(a).Mul(r))
}

// ColorKey is a color and alpha at a time.
type ColorKey struct {
	Time  float64
	Color colorful.Color
	Alpha float64
}

// Color is a keyframed RGBA curve. RGB blends in linear space, alpha blends
// linearly.
type Color struct {
	tl   timeline
	keys []ColorKey
}

var _ combattext.ColorCurve = (*Color)(nil)

func NewColor(keys []ColorKey, easing string) (*Color, error) {
	times := make([]float64, len(keys))
	for i, k := range keys {
		times[i] = k.Time
	}
	tl, err := newTimeline(times, easing)
	if err != nil {
		return nil, err
	}
	return &Color{tl: tl, keys: append([]ColorKey(nil), keys...)}, nil
}

func (c *Color) ColorAt(t float64) combattext.LinearColor {
	i, r := c.tl.locate(t)
	k := c.keys[i]
	if r == 0 {
		return toLinearColor(k.Color, k.Alpha)
	}
	next := c.keys[i+1]
	return toLinearColor(k.Color.BlendLinearRgb(next.Color, r), lerp(k.Alpha, next.Alpha, r))
}

func toLinearColor(c colorful.Color, alpha float64) combattext.LinearColor {
	return combattext.LinearColor{R: c.R, G: c.G, B: c.B, A: alpha}
}

// ParseHex parses a "#rrggbb" color.
func ParseHex(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}
