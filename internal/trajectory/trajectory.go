// Package trajectory converts between measured depth, true vertical depth,
// and horizontal position along a well path using discrete directional
// survey stations.
package trajectory

import (
	"errors"
	"sort"
)

// ErrNoSurveyData is returned when a well has no survey stations. Callers
// must treat it as "no conversion possible" and skip the conversion rather
// than substituting a default depth.
var ErrNoSurveyData = errors.New("no survey data available for well")

// Station is a single directional survey measurement. MD is the ordering
// key. TVD defaults to MD (assumed vertical) and Northing/Easting default
// to 0 when the source row carried no value; those defaults are applied at
// the database boundary, so a Station here is always fully populated.
type Station struct {
	MD       float64 `json:"md"`
	TVD      float64 `json:"tvd"`
	Northing float64 `json:"northing"`
	Easting  float64 `json:"easting"`
}

// Position is a full 3D point along the well path.
type Position struct {
	MD       float64 `json:"md"`
	TVD      float64 `json:"tvd"`
	Northing float64 `json:"northing"`
	Easting  float64 `json:"easting"`
}

// Survey is an ordered set of stations for one well.
type Survey struct {
	stations []Station
}

// NewSurvey builds a Survey from stations in any order. Sorting is stable
// so duplicate MDs keep their stored order and the first match wins.
func NewSurvey(stations []Station) *Survey {
	s := make([]Station, len(stations))
	copy(s, stations)
	sort.SliceStable(s, func(i, j int) bool { return s[i].MD < s[j].MD })
	return &Survey{stations: s}
}

// Stations returns the ordered station list.
func (s *Survey) Stations() []Station {
	return s.stations
}

// IsEmpty reports whether the survey has no stations.
func (s *Survey) IsEmpty() bool {
	return len(s.stations) == 0
}

// TVDAt converts a measured depth to true vertical depth.
//
// At or before the first station the first station's TVD is returned.
// Beyond the last station the TVD is extrapolated linearly along the
// direction of the last two stations; a single-station survey offers no
// extrapolation and returns that station's TVD for every query.
func (s *Survey) TVDAt(md float64) (float64, error) {
	if len(s.stations) == 0 {
		return 0, ErrNoSurveyData
	}
	return interpolate(s.stations, md, stationMD, stationTVD), nil
}

// MDAt converts a true vertical depth back to measured depth. The linear
// scan takes the first bracketing pair by ascending TVD; wells whose TVD
// plateaus or reverses resolve to the shallowest matching segment.
func (s *Survey) MDAt(tvd float64) (float64, error) {
	if len(s.stations) == 0 {
		return 0, ErrNoSurveyData
	}
	return interpolate(s.stations, tvd, stationTVD, stationMD), nil
}

// PositionAt computes the interpolated or extrapolated 3D position at an
// arbitrary measured depth. Used to place the current bit position marker
// when the latest reported depth runs past the last surveyed station.
func (s *Survey) PositionAt(md float64) (Position, error) {
	if len(s.stations) == 0 {
		return Position{}, ErrNoSurveyData
	}
	return Position{
		MD:       md,
		TVD:      interpolate(s.stations, md, stationMD, stationTVD),
		Northing: interpolate(s.stations, md, stationMD, stationNorthing),
		Easting:  interpolate(s.stations, md, stationMD, stationEasting),
	}, nil
}

func stationMD(st Station) float64       { return st.MD }
func stationTVD(st Station) float64      { return st.TVD }
func stationNorthing(st Station) float64 { return st.Northing }
func stationEasting(st Station) float64  { return st.Easting }

// interpolate maps a key value onto a value axis over the station list:
// clamp before the first station, bracket-and-lerp inside the surveyed
// range, extrapolate along the last segment beyond it. Consecutive
// stations sharing a key never divide by zero; the later station wins.
func interpolate(stations []Station, at float64, key, val func(Station) float64) float64 {
	first := stations[0]
	if at <= key(first) || len(stations) == 1 {
		return val(first)
	}

	last := stations[len(stations)-1]
	if at >= key(last) {
		prev := stations[len(stations)-2]
		dk := key(last) - key(prev)
		if dk <= 0 {
			return val(last)
		}
		ratio := (at - key(last)) / dk
		return val(last) + ratio*(val(last)-val(prev))
	}

	for i := 1; i < len(stations); i++ {
		prev, curr := stations[i-1], stations[i]
		if at > key(curr) {
			continue
		}
		dk := key(curr) - key(prev)
		if dk == 0 {
			return val(curr)
		}
		ratio := (at - key(prev)) / dk
		return val(prev) + ratio*(val(curr)-val(prev))
	}

	// Unreachable: at < key(last) guarantees a bracket above.
	return val(last)
}
