// Package chartmath provides the pure arithmetic used by the rendering
// layer: linear value-to-pixel scaling, "nice number" axis ticks, and
// display-currency conversion.
package chartmath

import "math"

// ScaleY maps a value onto a pixel Y coordinate (0 at the top) within the
// given height. When all values in the window are equal the range collapses
// to zero; it is replaced by 1 to avoid division by zero, pinning the line
// to the bottom edge.
func ScaleY(value, min, max, height float64) float64 {
	r := max - min
	if r == 0 {
		r = 1
	}
	return height - ((value-min)/r)*height
}

// NiceStep returns the axis tick step for a data span: the span divided
// into 5 intervals, rounded up to the nearest {1, 2, 5, 10} times a power
// of ten.
func NiceStep(span float64) float64 {
	if span <= 0 {
		return 1
	}
	raw := span / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	frac := raw / mag

	var nice float64
	switch {
	case frac <= 1:
		nice = 1
	case frac <= 2:
		nice = 2
	case frac <= 5:
		nice = 5
	default:
		nice = 10
	}
	return nice * mag
}

// Ticks returns axis tick values for [min, max], descending from the max
// rounded up to the step down to the min rounded down, inclusive. The
// ticks always bound the original extrema.
func Ticks(min, max float64) []float64 {
	step := NiceStep(max - min)
	top := math.Ceil(max/step) * step
	bottom := math.Floor(min/step) * step

	ticks := make([]float64, 0, int((top-bottom)/step)+1)
	// step/2のマージンは浮動小数点の丸め誤差対策
	for v := top; v >= bottom-step/2; v -= step {
		ticks = append(ticks, v)
	}
	return ticks
}

// DisplayPrice is the result of a display-currency conversion.
// Available is false when the conversion rate was absent or non-positive;
// in that case Value stays in the source currency and the renderer shows
// an "unavailable" marker instead of a wrong number.
type DisplayPrice struct {
	Value     float64
	Currency  string
	Available bool
}

// ConvertForDisplay converts a price from its native currency into the
// display currency. Conversion happens only when the currencies differ.
func ConvertForDisplay(value float64, from, to string, rate float64) DisplayPrice {
	if from == to {
		return DisplayPrice{Value: value, Currency: from, Available: true}
	}
	if rate <= 0 {
		return DisplayPrice{Value: value, Currency: from, Available: false}
	}
	return DisplayPrice{Value: value * rate, Currency: to, Available: true}
}
