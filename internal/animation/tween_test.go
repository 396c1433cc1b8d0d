package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	samples   []float64
	completes int
}

func (r *recorder) sample(v float64) { r.samples = append(r.samples, v) }
func (r *recorder) complete()        { r.completes++ }

func TestTween_DeliversSamplesThenCompletes(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := &recorder{}
	tw := Start(0, 100, time.Second, Linear, rec.sample, rec.complete, start)

	for _, ms := range []int{0, 250, 500, 999} {
		tw.Advance(start.Add(time.Duration(ms) * time.Millisecond))
	}
	assert.False(t, tw.Done())
	assert.Equal(t, 0, rec.completes)

	tw.Advance(start.Add(1200 * time.Millisecond))
	tw.Advance(start.Add(2 * time.Second))

	require.Len(t, rec.samples, 5)
	assert.InDelta(t, 0, rec.samples[0], 1e-9)
	assert.InDelta(t, 25, rec.samples[1], 1e-9)
	assert.InDelta(t, 50, rec.samples[2], 1e-9)
	assert.Equal(t, 100.0, rec.samples[4], "final sample is exact")
	assert.Equal(t, 1, rec.completes)
	assert.True(t, tw.Done())
	assert.Equal(t, 1.0, tw.Progress())
}

func TestTween_EasedValues(t *testing.T) {
	start := time.Unix(0, 0)
	rec := &recorder{}
	tw := Start(10, 20, 4*time.Second, Power1InOut, rec.sample, rec.complete, start)

	tw.Advance(start.Add(time.Second))

	require.Len(t, rec.samples, 1)
	assert.InDelta(t, 11.25, rec.samples[0], 1e-9)
	assert.InDelta(t, 0.25, tw.Progress(), 1e-12)
}

func TestTween_ZeroDurationCompletesImmediately(t *testing.T) {
	start := time.Unix(0, 0)
	rec := &recorder{}
	tw := Start(0, 7, 0, nil, rec.sample, rec.complete, start)

	tw.Advance(start)

	assert.Equal(t, []float64{7}, rec.samples)
	assert.Equal(t, 1, rec.completes)
}

func TestTween_ClockBeforeStart(t *testing.T) {
	start := time.Unix(100, 0)
	rec := &recorder{}
	tw := Start(0, 1, time.Second, Linear, rec.sample, nil, start)

	tw.Advance(start.Add(-time.Second))

	assert.Equal(t, []float64{0}, rec.samples)
}
