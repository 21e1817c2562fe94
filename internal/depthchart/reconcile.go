package depthchart

import "math"

// Reconcile aligns a prognosis segment list and a lithology segment list
// onto one combined depth window so both tracks render against the same
// vertical scale. Each source's segments were normalized against their own
// narrower window, so every segment's HeightPctCombined is recomputed here
// against the shared denominator. Segments are not re-sorted and no gaps
// are inserted; both lists are already gap-filled internally.
//
// Either range may be nil when its source has no rows. latestDepth is the
// latest observed drilling depth and extends the combined maximum; pass a
// non-positive value when no reports exist. Returns nil when neither source
// contributed a range and no depth was observed.
func Reconcile(progSegs []RenderSegment, progRange *Range, lithSegs []RenderSegment, lithRange *Range, latestDepth float64) *Range {
	var mins, maxs []float64
	if progRange != nil {
		mins = append(mins, progRange.Min)
		maxs = append(maxs, progRange.Max)
	}
	if lithRange != nil {
		mins = append(mins, lithRange.Min)
		maxs = append(maxs, lithRange.Max)
	}
	if latestDepth > 0 {
		maxs = append(maxs, latestDepth)
	}
	if len(mins) == 0 || len(maxs) == 0 {
		return nil
	}

	combinedMin := mins[0]
	for _, v := range mins[1:] {
		combinedMin = math.Min(combinedMin, v)
	}
	combinedMax := maxs[0]
	for _, v := range maxs[1:] {
		combinedMax = math.Max(combinedMax, v)
	}

	combinedTotal := math.Max(combinedMax, epsilon)
	rescale(progSegs, combinedTotal)
	rescale(lithSegs, combinedTotal)

	return &Range{
		Min:          combinedMin,
		Max:          combinedMax,
		TopSpacerPct: combinedMin / combinedTotal * 100.0,
	}
}

func rescale(segments []RenderSegment, combinedTotal float64) {
	for i := range segments {
		length := math.Max(segments[i].To-segments[i].From, 0)
		segments[i].HeightPctCombined = length / combinedTotal * 100.0
	}
}
