package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEases_Endpoints(t *testing.T) {
	for _, name := range EaseNames() {
		t.Run(name, func(t *testing.T) {
			e, err := EaseByName(name)
			require.NoError(t, err)
			assert.InDelta(t, 0, e(0), 1e-12)
			assert.InDelta(t, 1, e(1), 1e-12)
		})
	}
}

func TestEases_Monotonic(t *testing.T) {
	for _, name := range EaseNames() {
		e, _ := EaseByName(name)
		prev := e(0)
		for i := 1; i <= 100; i++ {
			v := e(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev, "%s at step %d", name, i)
			prev = v
		}
	}
}

func TestPower1InOut_Symmetric(t *testing.T) {
	assert.InDelta(t, 0.5, Power1InOut(0.5), 1e-12)
	assert.InDelta(t, 0.125, Power1InOut(0.25), 1e-12)
	assert.InDelta(t, 0.875, Power1InOut(0.75), 1e-12)
}

func TestEaseByName_Unknown(t *testing.T) {
	_, err := EaseByName("bounce")
	assert.ErrorContains(t, err, "bounce")
}
