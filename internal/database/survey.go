package database

import (
	"github.com/mhoque/drillsight/internal/trajectory"
)

// TrajectoryStations converts stored survey rows into fully-populated
// trajectory stations. Nullable defaults are applied here, at the storage
// boundary: a missing TVD means the well is assumed vertical at that
// station (TVD = MD), and missing horizontal offsets are zero.
func TrajectoryStations(rows []SurveyStation) []trajectory.Station {
	stations := make([]trajectory.Station, len(rows))
	for i, row := range rows {
		st := trajectory.Station{MD: row.MD, TVD: row.MD}
		if row.TVD != nil {
			st.TVD = *row.TVD
		}
		if row.Northing != nil {
			st.Northing = *row.Northing
		}
		if row.Easting != nil {
			st.Easting = *row.Easting
		}
		stations[i] = st
	}
	return stations
}
