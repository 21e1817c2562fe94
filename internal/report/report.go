// Package report derives per-well summaries from drilling report rows:
// drilling efficiency, gas-show aggregates, and lithology-vs-prognosis
// comparison.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mhoque/drillsight/internal/database"
)

// significantFormationPct is the threshold above which a rock type counts
// as a present formation when comparing against the prognosis.
const significantFormationPct = 20.0

// DrillingEfficiency is the average daily progress in meters per 24-hour
// day over a set of reports. Each report covers one operational day.
func DrillingEfficiency(reports []database.DailyDrillingReport) float64 {
	totalProgress := 0.0
	totalHours := 0.0
	for _, r := range reports {
		totalProgress += r.DepthEnd - r.DepthStart
		totalHours += 24
	}
	if totalHours == 0 {
		return 0
	}
	return math.Round(totalProgress/totalHours*24*100) / 100
}

// GasShowSummary aggregates gas show measurements across a report
// selection.
type GasShowSummary struct {
	TotalCount  int      `json:"total_count"`
	MaxPeak     float64  `json:"max_peak"`
	AvgAboveBG  float64  `json:"avg_above_bg"`
	LatestDepth *float64 `json:"latest_depth,omitempty"`
}

// SummarizeGasShows computes the gas show summary for a set of
// measurements, which are expected in ascending depth order. Returns nil
// when there are no measurements.
func SummarizeGasShows(measurements []database.GasShowMeasurement) *GasShowSummary {
	if len(measurements) == 0 {
		return nil
	}

	s := &GasShowSummary{TotalCount: len(measurements)}
	sumAboveBG := 0.0
	for _, m := range measurements {
		if m.MaxPercent > s.MaxPeak {
			s.MaxPeak = m.MaxPercent
		}
		sumAboveBG += m.AboveBGPercent
	}
	s.AvgAboveBG = sumAboveBG / float64(len(measurements))

	deepest := measurements[len(measurements)-1].StartDepthM
	s.LatestDepth = &deepest
	return s
}

// LithologyComponents extracts the recorded percentage components of a
// lithology row, treating nil columns as zero.
func LithologyComponents(l database.DrillingLithology) map[string]float64 {
	return map[string]float64{
		"sand":      deref(l.SandPercentage),
		"clay":      deref(l.ClayPercentage),
		"shale":     deref(l.ShalePercentage),
		"silt":      deref(l.SiltPercentage),
		"coal":      deref(l.CoalPercentage),
		"limestone": deref(l.LimestonePercentage),
	}
}

// DominantLithology returns the rock type with the highest percentage and
// its share. Ties resolve alphabetically so the result is deterministic.
func DominantLithology(components map[string]float64) (string, float64) {
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestPct := "", math.Inf(-1)
	for _, name := range names {
		if components[name] > bestPct {
			best, bestPct = name, components[name]
		}
	}
	if best == "" {
		return "", 0
	}
	return best, bestPct
}

// ComparisonLevel classifies a prognosis comparison result for display.
type ComparisonLevel string

const (
	ComparisonInfo    ComparisonLevel = "info"
	ComparisonSuccess ComparisonLevel = "success"
	ComparisonWarning ComparisonLevel = "warning"
)

// CompareLithologyWithPrognosis checks an observed lithology interval
// against the well's prognosis. The first prognosis row whose planned
// depth window overlaps the interval is used; formations at or above the
// significance threshold count as present.
func CompareLithologyWithPrognosis(l database.DrillingLithology, prognoses []database.WellPrognosis) (string, ComparisonLevel) {
	var match *database.WellPrognosis
	for i := range prognoses {
		p := &prognoses[i]
		if p.PlannedDepthStart == nil || p.PlannedDepthEnd == nil {
			continue
		}
		if *p.PlannedDepthStart <= l.DepthTo && *p.PlannedDepthEnd >= l.DepthFrom {
			match = p
			break
		}
	}
	if match == nil {
		return "No prognosis data available", ComparisonInfo
	}

	var actual []string
	for _, name := range []string{"shale", "sand", "silt", "clay"} {
		if LithologyComponents(l)[name] >= significantFormationPct {
			actual = append(actual, name)
		}
	}

	for _, name := range actual {
		if strings.EqualFold(name, match.Lithology) {
			return fmt.Sprintf("Matches prognosis: %s", titleCase(match.Lithology)), ComparisonSuccess
		}
	}

	found := "no significant formations"
	if len(actual) > 0 {
		titled := make([]string, len(actual))
		for i, name := range actual {
			titled[i] = titleCase(name)
		}
		found = strings.Join(titled, ", ")
	}
	return fmt.Sprintf("Differs from prognosis: expected %s, found %s", titleCase(match.Lithology), found), ComparisonWarning
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
