// Package dashboard assembles the per-well visualization payload: the
// prognosis and observed-lithology tracks normalized onto one shared depth
// axis, the well trajectory, and the extrapolated current bit position.
// Everything here is a pure computation over rows the caller already
// fetched; nothing is persisted.
package dashboard

import (
	"math"

	"github.com/mhoque/drillsight/internal/database"
	"github.com/mhoque/drillsight/internal/depthchart"
	"github.com/mhoque/drillsight/internal/trajectory"
)

// Data is the assembled dashboard payload for one well.
type Data struct {
	PrognosisSegments []depthchart.RenderSegment `json:"prognosis_segments,omitempty"`
	PrognosisRange    *depthchart.Range          `json:"prognosis_range,omitempty"`
	LithologySegments []depthchart.RenderSegment `json:"lithology_segments,omitempty"`
	LithologyRange    *depthchart.Range          `json:"lithology_range,omitempty"`
	GasShowSegments   []depthchart.RenderSegment `json:"gas_show_segments,omitempty"`
	CombinedRange     *depthchart.Range          `json:"combined_range,omitempty"`
	Trajectory        []trajectory.Station       `json:"trajectory,omitempty"`
	LatestDepth       *float64                   `json:"latest_depth,omitempty"`
	LatestDepthPoint  *trajectory.Position       `json:"latest_depth_point,omitempty"`
}

// Build computes the dashboard payload from a well's survey stations,
// prognosis rows, observed lithology rows, gas show measurements, and the
// latest reported depth (nil when the well has no reports).
func Build(stations []trajectory.Station, prognoses []database.WellPrognosis, lithologies []database.DrillingLithology, gasShows []database.GasShowMeasurement, latestDepth *float64) *Data {
	data := &Data{LatestDepth: latestDepth}

	svy := trajectory.NewSurvey(stations)
	if !svy.IsEmpty() {
		data.Trajectory = svy.Stations()
		if latestDepth != nil {
			if pos, err := svy.PositionAt(*latestDepth); err == nil {
				data.LatestDepthPoint = &pos
			}
		}
	}

	if intervals := PrognosisIntervals(prognoses, svy); len(intervals) > 0 {
		minDepth, maxDepth := intervalSpan(intervals)
		segments := depthchart.ComputeRenderSegments(intervals, minDepth, maxDepth)
		r := depthchart.NewRange(minDepth, maxDepth)
		data.PrognosisSegments = segments
		data.PrognosisRange = &r
	}

	if intervals := LithologyIntervals(lithologies); len(intervals) > 0 {
		minDepth, maxDepth := intervalSpan(intervals)
		// The lithology track runs down to the bit even when cuttings
		// have not been described that deep yet.
		if latestDepth != nil && *latestDepth > maxDepth {
			maxDepth = *latestDepth
		}
		segments := depthchart.ComputeRenderSegments(intervals, minDepth, maxDepth)
		r := depthchart.NewRange(minDepth, maxDepth)
		data.LithologySegments = segments
		data.LithologyRange = &r
	}

	observed := 0.0
	if latestDepth != nil {
		observed = *latestDepth
	}
	data.CombinedRange = depthchart.Reconcile(
		data.PrognosisSegments, data.PrognosisRange,
		data.LithologySegments, data.LithologyRange,
		observed,
	)

	if intervals := GasShowIntervals(gasShows); len(intervals) > 0 {
		// Gas show markers overlay the other tracks, so they are
		// normalized against the combined window rather than their own
		// span whenever one exists.
		minDepth, maxDepth := intervalSpan(intervals)
		if data.CombinedRange != nil {
			minDepth, maxDepth = data.CombinedRange.Min, data.CombinedRange.Max
		}
		data.GasShowSegments = depthchart.ComputeRenderSegments(intervals, minDepth, maxDepth)
	}

	return data
}

// PrognosisIntervals converts prognosis rows to depth intervals in MD.
// Stored MD depths are preferred; rows keyed only by planned TVD are
// converted through the well's survey. Rows that cannot be expressed in MD
// (no stored MD and no survey to convert with) are skipped.
func PrognosisIntervals(prognoses []database.WellPrognosis, svy *trajectory.Survey) []depthchart.Interval {
	var intervals []depthchart.Interval
	for _, p := range prognoses {
		start, ok := prognosisMD(p.MDDepthStart, p.PlannedDepthStart, svy)
		if !ok {
			continue
		}
		end, ok := prognosisMD(p.MDDepthEnd, p.PlannedDepthEnd, svy)
		if !ok {
			continue
		}
		intervals = append(intervals, depthchart.Interval{
			From: start,
			To:   end,
			Fill: depthchart.CategoryFill{Lithology: p.Lithology, Target: p.TargetDepth},
		})
	}
	return intervals
}

func prognosisMD(md, plannedTVD *float64, svy *trajectory.Survey) (float64, bool) {
	if md != nil {
		return round1(*md), true
	}
	if plannedTVD == nil || svy.IsEmpty() {
		return 0, false
	}
	converted, err := svy.MDAt(*plannedTVD)
	if err != nil {
		return 0, false
	}
	return round1(converted), true
}

// LithologyIntervals converts observed lithology rows to breakdown depth
// intervals. Rows whose percentage columns are all empty stay in the list
// and are dropped by the normalizer's zero-total rule.
func LithologyIntervals(lithologies []database.DrillingLithology) []depthchart.Interval {
	intervals := make([]depthchart.Interval, 0, len(lithologies))
	for _, l := range lithologies {
		intervals = append(intervals, depthchart.Interval{
			From: l.DepthFrom,
			To:   l.DepthTo,
			Fill: depthchart.BreakdownFill{Components: []depthchart.Component{
				{Type: "sand", Percentage: deref(l.SandPercentage)},
				{Type: "clay", Percentage: deref(l.ClayPercentage)},
				{Type: "shale", Percentage: deref(l.ShalePercentage)},
				{Type: "silt", Percentage: deref(l.SiltPercentage)},
				{Type: "coal", Percentage: deref(l.CoalPercentage)},
				{Type: "limestone", Percentage: deref(l.LimestonePercentage)},
			}},
		})
	}
	return intervals
}

// GasShowIntervals converts gas show measurements to event depth
// intervals for marker rendering.
func GasShowIntervals(measurements []database.GasShowMeasurement) []depthchart.Interval {
	intervals := make([]depthchart.Interval, 0, len(measurements))
	for _, m := range measurements {
		intervals = append(intervals, depthchart.Interval{
			From: m.StartDepthM,
			To:   m.EndDepthM,
			Fill: depthchart.EventFill{Formation: m.Formation},
		})
	}
	return intervals
}

func intervalSpan(intervals []depthchart.Interval) (float64, float64) {
	minDepth, maxDepth := math.Inf(1), math.Inf(-1)
	for _, iv := range intervals {
		minDepth = math.Min(minDepth, iv.From)
		maxDepth = math.Max(maxDepth, iv.To)
	}
	return minDepth, maxDepth
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
