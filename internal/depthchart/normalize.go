// Package depthchart turns independently-keyed depth-interval datasets
// (lithology observations, prognosis rows, gas-show events) into gap-filled
// render segments on a shared depth axis, and reconciles segment lists from
// multiple sources so they stack against one vertical scale.
package depthchart

import (
	"fmt"
	"math"
	"sort"
)

// epsilon substitutes for degenerate (zero or negative) depth spans so
// percentage math never divides by zero.
const epsilon = 1e-6

// Component is one named percentage share of a breakdown interval.
type Component struct {
	Type       string  `json:"type"`
	Percentage float64 `json:"percentage"`
}

// Fill describes what a depth interval contains. Exactly one of the three
// concrete fills is attached to each interval, so the normalizer's
// branching is exhaustive over interval kinds.
type Fill interface {
	fill()
}

// CategoryFill is a single-label interval: a prognosis row carrying the
// expected lithology code and an optional target-depth flag.
type CategoryFill struct {
	Lithology string
	Target    bool
}

// BreakdownFill is a composition interval: observed lithology percentages
// by rock type. Percentages are expected to sum to at most 100.
type BreakdownFill struct {
	Components []Component
}

// EventFill is a point-event interval such as a gas show, labeled with the
// formation it was observed in.
type EventFill struct {
	Formation string
}

func (CategoryFill) fill()  {}
func (BreakdownFill) fill() {}
func (EventFill) fill()     {}

// Interval is one depth-keyed source row. From and To are meters MD.
type Interval struct {
	From float64
	To   float64
	Fill Fill
}

// BreakdownEntry is one rock type's share of a rendered segment, with its
// height normalized against the segment's own percentage total.
type BreakdownEntry struct {
	Type       string  `json:"type"`
	Percentage float64 `json:"percentage"`
	HeightPct  float64 `json:"height_pct"`
}

// RenderSegment is one gap-free slice of the rendered depth column.
// HeightPct is the segment's length as a percentage of the zero-to-max
// span, not of the visible sub-range, so segment lists produced for
// different sources stack correctly against a shared axis. WidthPct is
// relative to the visible min-to-max range and only set on data segments.
// HeightPctCombined is populated by Reconcile.
type RenderSegment struct {
	From              float64          `json:"from"`
	To                float64          `json:"to"`
	IsGap             bool             `json:"is_gap"`
	HeightPct         float64          `json:"height_pct"`
	WidthPct          float64          `json:"width_pct,omitempty"`
	HeightPctCombined float64          `json:"height_pct_combined,omitempty"`
	Label             string           `json:"label"`
	Lithology         string           `json:"lithology,omitempty"`
	IsTarget          bool             `json:"is_target,omitempty"`
	Formation         string           `json:"formation,omitempty"`
	Breakdown         []BreakdownEntry `json:"breakdown,omitempty"`
}

// Range describes the depth window a segment list was normalized over.
// TopSpacerPct is the share of the zero-to-max span above Min; it offsets
// the first rendered segment so tracks with different minimums stay
// aligned.
type Range struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	TopSpacerPct float64 `json:"top_spacer_pct"`
}

// NewRange builds the Range for a [minDepth, maxDepth] window.
func NewRange(minDepth, maxDepth float64) Range {
	return Range{
		Min:          minDepth,
		Max:          maxDepth,
		TopSpacerPct: minDepth / math.Max(maxDepth, epsilon) * 100.0,
	}
}

// ComputeRenderSegments normalizes depth intervals into a continuous,
// gap-filled segment list over [minDepth, maxDepth]. Input intervals need
// not be sorted. Breakdown intervals whose components sum to zero are
// treated as absent: nothing is emitted for them and the surrounding gap
// logic covers their depth. Negative-length intervals clamp to zero length.
func ComputeRenderSegments(intervals []Interval, minDepth, maxDepth float64) []RenderSegment {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })

	zeroOriginTotal := math.Max(maxDepth, epsilon)
	totalRange := math.Max(maxDepth-minDepth, epsilon)

	var segments []RenderSegment
	cursor := minDepth

	for _, iv := range sorted {
		start, end := iv.From, iv.To
		if end < start {
			end = start
		}

		seg := RenderSegment{
			From:      start,
			To:        end,
			HeightPct: (end - start) / zeroOriginTotal * 100.0,
			WidthPct:  (end - start) / totalRange * 100.0,
			Label:     segmentLabel(start, end, false),
		}

		switch f := iv.Fill.(type) {
		case CategoryFill:
			seg.Lithology = f.Lithology
			seg.IsTarget = f.Target
		case BreakdownFill:
			breakdown, ok := normalizeBreakdown(f.Components)
			if !ok {
				// No composition data at all: skip without advancing the
				// cursor so the gap logic accounts for this depth.
				continue
			}
			seg.Breakdown = breakdown
		case EventFill:
			seg.Formation = f.Formation
		}

		if start > cursor {
			segments = append(segments, gapSegment(cursor, start, zeroOriginTotal))
		}

		segments = append(segments, seg)
		if end > cursor {
			cursor = end
		}
	}

	if cursor < maxDepth {
		segments = append(segments, gapSegment(cursor, maxDepth, zeroOriginTotal))
	}

	return segments
}

// normalizeBreakdown drops zero components, sorts descending by
// percentage, and scales each entry's height against the interval's own
// total. Returns ok=false when no component carries a positive share.
func normalizeBreakdown(components []Component) ([]BreakdownEntry, bool) {
	total := 0.0
	for _, c := range components {
		if c.Percentage > 0 {
			total += c.Percentage
		}
	}
	if total <= 0 {
		return nil, false
	}

	entries := make([]BreakdownEntry, 0, len(components))
	for _, c := range components {
		if c.Percentage <= 0 {
			continue
		}
		entries = append(entries, BreakdownEntry{
			Type:       c.Type,
			Percentage: round1(c.Percentage),
			HeightPct:  c.Percentage / total * 100.0,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Percentage > entries[j].Percentage })
	return entries, true
}

func gapSegment(from, to, zeroOriginTotal float64) RenderSegment {
	return RenderSegment{
		From:      from,
		To:        to,
		IsGap:     true,
		Lithology: "unknown",
		HeightPct: (to - from) / zeroOriginTotal * 100.0,
		Label:     segmentLabel(from, to, true),
	}
}

func segmentLabel(from, to float64, gap bool) string {
	if gap {
		return fmt.Sprintf("%.1f-%.1f m (No data)", from, to)
	}
	return fmt.Sprintf("%.1f-%.1f m", from, to)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
