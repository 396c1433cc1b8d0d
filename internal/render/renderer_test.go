package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheel.klederson.com/internal/wheel"
)

func newWheel(l Layout) *wheel.Wheel {
	w := wheel.New(10, rand.New(rand.NewSource(3)), zerolog.Nop())
	w.Model().SetGeometry(l.Geometry())
	return w
}

func TestRender_Dimensions(t *testing.T) {
	l := NewLayout(80, 40)
	out := Render(l, newWheel(l).Model(), false)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 40)
	for i, line := range lines {
		assert.Equal(t, 80, lipgloss.Width(line), "line %d", i)
	}
}

func TestRender_PointerAndHub(t *testing.T) {
	l := NewLayout(80, 40)
	out := Render(l, newWheel(l).Model(), false)

	assert.Contains(t, out, "▼")
	assert.Contains(t, out, hubLabel)
}

func TestRender_TooSmall(t *testing.T) {
	l := NewLayout(5, 3)
	assert.Empty(t, Render(l, newWheel(l).Model(), false))
}

// The cell under the pointer marker belongs to the sector a spin lands on.
func TestRender_PointerCellMatchesWinner(t *testing.T) {
	l := NewLayout(80, 40)
	w := newWheel(l)

	spin, ok := w.Trigger()
	require.True(t, ok)
	w.OnSample(spin.Delta)
	w.OnComplete()

	col, row := l.PointerCell()
	x, y := l.ToPlane(col, row+2)
	id, hit := w.Model().HitTest(x, y)
	require.True(t, hit)
	assert.Equal(t, spin.Sector, id)
}

func TestLabelCells(t *testing.T) {
	l := NewLayout(80, 40)
	cells := labelCells(l, newWheel(l).Model())

	var text []string
	for _, ch := range cells {
		text = append(text, ch)
	}
	// Nine single-digit labels plus "10".
	assert.Len(t, text, 11)
}

func TestRenderLegend(t *testing.T) {
	legend := RenderLegend(60)
	assert.LessOrEqual(t, lipgloss.Width(legend), 60)
	assert.True(t, strings.HasPrefix(legend, " "), "legend is centered")
	assert.Contains(t, legend, "SPACE")
}
