// Package survey parses plain-text directional survey listings into
// station rows. Supported input is a tabular listing with one station per
// line: MD, then optionally TVD, Northing, and Easting, separated by
// whitespace or commas. Header lines and comments are skipped.
package survey

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mhoque/drillsight/internal/database"
)

// ErrNoStations is returned when the input contained no parseable station
// lines.
var ErrNoStations = fmt.Errorf("survey file contains no station rows")

// ParseStations reads a survey listing and returns station rows in file
// order. Lines that do not begin with a number (headers, units rows,
// separators) are skipped; a line that starts numeric but is otherwise
// malformed is an error, so a corrupted file fails loudly instead of
// importing a partial survey.
func ParseStations(r io.Reader) ([]database.SurveyStation, error) {
	var stations []database.SurveyStation

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitFields(line)
		if len(fields) == 0 {
			continue
		}

		md, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			// Not a data line. Headers and unit rows land here.
			continue
		}

		station := database.SurveyStation{MD: md}
		optional := []**float64{nil, &station.TVD, &station.Northing, &station.Easting}
		for i := 1; i < len(fields) && i < len(optional); i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad numeric field %q", lineNo, fields[i])
			}
			val := v
			*optional[i] = &val
		}
		stations = append(stations, station)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(stations) == 0 {
		return nil, ErrNoStations
	}
	return stations, nil
}

func splitFields(line string) []string {
	line = strings.ReplaceAll(line, ",", " ")
	return strings.Fields(line)
}
