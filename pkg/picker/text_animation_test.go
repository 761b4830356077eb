package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font"

	"github.com/go-drift/picker/pkg/graphics"
	"github.com/go-drift/picker/pkg/theme"
)

func testPresets() theme.PickerThemeData {
	return theme.DefaultLightTheme().PickerThemeOf()
}

func TestTextAnimatorRoles(t *testing.T) {
	th := testPresets()
	a := NewTextAnimator(DateColumn, th, 5)
	rows := a.Rows()
	assert.Len(t, rows, 5)
	assert.Equal(t, th.Date.Disappearing, rows[0].Current)
	assert.Equal(t, th.Date.Candidate, rows[1].Current)
	assert.Equal(t, th.Date.Selected, rows[2].Current)
	assert.Equal(t, th.Date.Candidate, rows[3].Current)

	// Up is the slot above, Down the slot below.
	assert.Equal(t, th.Date.Candidate, rows[2].Up)
	assert.Equal(t, th.Date.Candidate, rows[2].Down)
	assert.Equal(t, th.Date.Selected, rows[1].Down)
	assert.Equal(t, rows[0].Current, rows[0].Up)
	assert.Equal(t, rows[4].Current, rows[4].Down)
}

func TestTextAnimatorEdgeFreeze(t *testing.T) {
	a := NewTextAnimator(DateColumn, testPresets(), 5)
	rows := a.Rows()
	for _, p := range []float64{0, 0.3, 0.7, 1} {
		assert.Equal(t, rows[0].Current, a.TextPropertiesLinearAnimation(0, true, p))
		assert.Equal(t, rows[4].Current, a.TextPropertiesLinearAnimation(4, false, p))
	}
}

func TestTextAnimatorInterpolation(t *testing.T) {
	th := testPresets()
	a := NewTextAnimator(DateColumn, th, 5)

	got := a.TextPropertiesLinearAnimation(2, true, 0.25)
	assert.InDelta(t, 19.0, got.FontSize, 1e-9)
	assert.Equal(t, th.Date.Selected.Weight, got.Weight)

	got = a.TextPropertiesLinearAnimation(2, true, 0.5)
	assert.InDelta(t, 18.0, got.FontSize, 1e-9)
	assert.Equal(t, th.Date.Candidate.Weight, got.Weight)

	got = a.TextPropertiesLinearAnimation(2, false, 1)
	assert.Equal(t, th.Date.Candidate, got)

	// Out of range percentages clamp.
	got = a.TextPropertiesLinearAnimation(1, false, 3)
	assert.Equal(t, th.Date.Selected, got)
}

func TestTextAnimatorResetAndKinds(t *testing.T) {
	th := testPresets()
	a := NewTextAnimator(GenericColumn, th, 3)
	a.Update(true, 0.6)
	assert.NotEqual(t, a.Rows()[1].Current, a.Rows()[1].Style)
	a.Reset()
	for _, r := range a.Rows() {
		assert.Equal(t, r.Current, r.Style)
	}
	assert.Equal(t, font.WeightBold, a.Rows()[1].Current.Weight)

	tm := NewTextAnimator(TimeColumn, th, 3)
	assert.Equal(t, th.Time.Selected.FontSize, tm.Rows()[1].Current.FontSize)

	tm.SetShowCount(7)
	assert.Len(t, tm.Rows(), 7)
	assert.Equal(t, th.Time.Selected, tm.Rows()[3].Current)
	assert.Equal(t, graphics.TextStyle{}, tm.TextPropertiesLinearAnimation(9, true, 0.5))
}

func TestTextAnimatorFollowsThemeChange(t *testing.T) {
	th := testPresets()
	a := NewTextAnimator(DateColumn, th, 5)

	th.Date.Candidate.FontSize = 30
	a.SetTheme(th)

	assert.Equal(t, th.Date.Candidate, a.TextPropertiesLinearAnimation(2, true, 1))
	got := a.TextPropertiesLinearAnimation(2, false, 0.5)
	assert.InDelta(t, (th.Date.Selected.FontSize+30)/2, got.FontSize, 1e-9)
	assert.Equal(t, got, a.Rows()[2].Style)
}
