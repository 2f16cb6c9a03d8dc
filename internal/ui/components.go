package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
)

const sliderMax = 100

// SliderCount maps a slider position in [0, 100] to a component count on a
// logarithmic scale from 1 to 1000.
func SliderCount(p int) int {
	p = max(0, min(sliderMax, p))
	return int(math.Round(math.Pow(1000, float64(p)/sliderMax)))
}

// SliderPosition returns the lowest slider position whose count reaches count.
func SliderPosition(count int) int {
	for p := 0; p <= sliderMax; p++ {
		if SliderCount(p) >= count {
			return p
		}
	}
	return sliderMax
}

func newSliderBar() progress.Model {
	return progress.New(
		progress.WithScaledGradient("#5A56E0", "#EE6FF8"),
		progress.WithoutPercentage(),
	)
}

// renderSlider draws the frequency slider at position p labeled with count.
func renderSlider(bar progress.Model, p, count, width int) string {
	label := fmt.Sprintf(" %4d freq", count)
	bar.Width = max(10, width-len(label)-1)
	return bar.ViewAs(float64(p)/sliderMax) + labelStyle.Render(label)
}

func renderVolumePercent(vol float64) string {
	return fmt.Sprintf("vol %d%%", int(math.Round(vol*100)))
}
