package animation

import (
	"fmt"
	"math"
	"sort"
)

// Ease maps linear progress t in [0, 1] to eased progress, with
// Ease(0) == 0 and Ease(1) == 1.
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

func Power1In(t float64) float64 { return t * t }

func Power1Out(t float64) float64 { return 1 - (1-t)*(1-t) }

// Power1InOut accelerates through the first half and decelerates through
// the second.
func Power1InOut(t float64) float64 { return powerInOut(t, 2) }

func Power2InOut(t float64) float64 { return powerInOut(t, 3) }

func Power3InOut(t float64) float64 { return powerInOut(t, 4) }

func powerInOut(t, p float64) float64 {
	if t < 0.5 {
		return math.Pow(2*t, p) / 2
	}
	return 1 - math.Pow(2*(1-t), p)/2
}

var eases = map[string]Ease{
	"linear":       Linear,
	"none":         Linear,
	"power1.in":    Power1In,
	"power1.out":   Power1Out,
	"power1.inOut": Power1InOut,
	"power2.inOut": Power2InOut,
	"power3.inOut": Power3InOut,
}

// EaseByName looks up an easing curve by name.
func EaseByName(name string) (Ease, error) {
	if e, ok := eases[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("unknown ease %q (known: %v)", name, EaseNames())
}

// EaseNames lists the registered easing curve names in sorted order.
func EaseNames() []string {
	names := make([]string, 0, len(eases))
	for n := range eases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
