// Package calibrate derives a pixels-per-millimeter scale from user-drawn
// reference lines and diagnoses how consistent those lines are with each
// other. The calibrator holds no state: every call recomputes from the full
// line set.
package calibrate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/planfit/planfit/internal/model"
)

// Mismatch thresholds, in percent of the mean scale.
const (
	// pairMismatchLimit is the two-line disagreement above which one line
	// is flagged as incorrect.
	pairMismatchLimit = 5.0
	// pairMismatchNote is the two-line disagreement above which the result
	// stays valid but carries an informational note.
	pairMismatchNote = 1.0
	// deviationLimit is the per-line deviation from the mean (three or more
	// lines) above which the worst line is flagged.
	deviationLimit = 10.0
)

// Compute returns the average scale across all reference lines, or nil when
// no line yields a usable ratio. The reference pixel frame is taken from
// the most recently added line: all lines are assumed to have been drawn
// against the same displayed image size, so the last line wins.
func Compute(lines []model.ReferenceLine) *model.ScaleInfo {
	var scales []float64
	for _, l := range lines {
		if s := l.Scale(); s > 0 {
			scales = append(scales, s)
		}
	}
	if len(scales) == 0 {
		return nil
	}

	last := lines[len(lines)-1]
	return &model.ScaleInfo{
		ImageWidth:          last.ImageWidth,
		ImageHeight:         last.ImageHeight,
		PixelsPerMillimeter: stat.Mean(scales, nil),
		Unit:                model.UnitMillimeter,
	}
}

// AxisScales holds independent horizontal and vertical scale estimates.
// Either axis may be nil when no line of that orientation exists.
type AxisScales struct {
	ScaleX          *float64 `json:"scale_x,omitempty"` // horizontal-dominant lines
	ScaleY          *float64 `json:"scale_y,omitempty"` // vertical-dominant lines
	MismatchPercent *float64 `json:"mismatch_percent,omitempty"`
}

// ComputeAxisScales splits the lines into horizontal-dominant and
// vertical-dominant classes (ties count as vertical) and averages each
// class independently. When both axes are present the relative mismatch
// between them is reported as a percentage of their mean.
func ComputeAxisScales(lines []model.ReferenceLine) AxisScales {
	var horizontal, vertical []float64
	for _, l := range lines {
		s := l.Scale()
		if s <= 0 {
			continue
		}
		if l.HorizontalDominant() {
			horizontal = append(horizontal, s)
		} else {
			vertical = append(vertical, s)
		}
	}

	var result AxisScales
	if len(horizontal) > 0 {
		sx := stat.Mean(horizontal, nil)
		result.ScaleX = &sx
	}
	if len(vertical) > 0 {
		sy := stat.Mean(vertical, nil)
		result.ScaleY = &sy
	}
	if result.ScaleX != nil && result.ScaleY != nil {
		mean := (*result.ScaleX + *result.ScaleY) / 2
		if mean > 0 {
			mismatch := math.Abs(*result.ScaleX-*result.ScaleY) / mean * 100
			result.MismatchPercent = &mismatch
		}
	}
	return result
}

// Validate diagnoses the reference line set for internal consistency.
// The verdict is purely advisory: Compute produces an average scale
// regardless of the outcome, and callers decide whether to warn the user.
//
// With exactly two lines the pairwise disagreement is compared against a 5%
// limit; with more lines the worst absolute deviation from the mean is
// compared against 10% of the mean. When two lines deviate equally, the
// later-indexed line is flagged so the verdict stays stable as lines are
// appended.
func Validate(lines []model.ReferenceLine) model.ValidationResult {
	if len(lines) < 2 {
		return model.OKValidation()
	}

	scales := make([]float64, len(lines))
	for i, l := range lines {
		scales[i] = l.Scale()
	}

	if len(lines) == 2 {
		return validatePair(scales)
	}
	return validateMany(scales)
}

// validatePair handles the two-line case. Both lines are by construction
// equidistant from the pairwise mean, so when the disagreement exceeds the
// limit the later line is the one flagged.
func validatePair(scales []float64) model.ValidationResult {
	mean := (scales[0] + scales[1]) / 2
	if mean <= 0 {
		return model.OKValidation()
	}
	mismatch := math.Abs(scales[0]-scales[1]) / mean * 100

	result := model.ValidationResult{
		IsValid:          true,
		InconsistentLine: -1,
		MismatchPercent:  &mismatch,
	}

	switch {
	case mismatch > pairMismatchLimit:
		result.IsValid = false
		result.InconsistentLine = 1
		result.Message = fmt.Sprintf(
			"reference lines disagree by %.1f%%: line 2 deviates from the pairwise average and is likely incorrect", mismatch)
	case mismatch > pairMismatchNote:
		result.Message = fmt.Sprintf("reference lines are consistent (difference %.1f%%)", mismatch)
	default:
		result.Message = "reference lines are consistent"
	}
	return result
}

// validateMany handles three or more lines: flag the line deviating most
// from the mean when that deviation exceeds 10% of the mean.
func validateMany(scales []float64) model.ValidationResult {
	mean := stat.Mean(scales, nil)
	if mean <= 0 {
		return model.OKValidation()
	}

	worstIdx := 0
	worstDev := math.Abs(scales[0] - mean)
	for i := 1; i < len(scales); i++ {
		dev := math.Abs(scales[i] - mean)
		// >= prefers the later index on ties, keeping the flagged line
		// stable as more lines are added.
		if dev >= worstDev {
			worstDev = dev
			worstIdx = i
		}
	}

	deviation := worstDev / mean * 100
	result := model.ValidationResult{
		IsValid:          true,
		InconsistentLine: -1,
		MismatchPercent:  &deviation,
	}

	if deviation > deviationLimit {
		result.IsValid = false
		result.InconsistentLine = worstIdx
		result.Message = fmt.Sprintf(
			"line %d deviates %.1f%% from the average scale and is likely incorrect", worstIdx+1, deviation)
	} else {
		result.Message = fmt.Sprintf("reference lines are consistent (worst deviation %.1f%%)", deviation)
	}
	return result
}
