// Package palette holds the display colour of a wheel sector and the hover
// fade applied to it each frame.
package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"wheel.klederson.com/internal/config"
)

// Rand is the randomness a colour draw needs. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Color is an HSL colour. Hue is in degrees [0, 360), saturation and
// lightness are percentages [0, 100].
type Color struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// Random returns a colour with a random hue and saturation at resting
// lightness.
func Random(rng Rand) Color {
	return Color{
		Hue:        math.Floor(rng.Float64() * 360),
		Saturation: math.Floor(rng.Float64() * 100),
		Lightness:  config.MinLightness,
	}
}

// SetLightness sets the lightness, clamped to [0, 100].
func (c *Color) SetLightness(l float64) {
	c.Lightness = math.Max(0, math.Min(100, l))
}

// Fade steps the lightness one frame toward MaxLightness when active and
// back toward MinLightness when not.
func (c Color) Fade(active bool) Color {
	switch {
	case active && c.Lightness < config.MaxLightness:
		c.SetLightness(math.Min(c.Lightness+config.LightnessStep, config.MaxLightness))
	case !active && c.Lightness > config.MinLightness:
		c.SetLightness(math.Max(c.Lightness-config.LightnessStep, config.MinLightness))
	}
	return c
}

// Hex returns the colour as #rrggbb.
func (c Color) Hex() string {
	return colorful.Hsl(c.Hue, c.Saturation/100, c.Lightness/100).Clamped().Hex()
}

// String formats the colour in CSS notation.
func (c Color) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.Hue, c.Saturation, c.Lightness)
}
