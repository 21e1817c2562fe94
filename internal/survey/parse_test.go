package survey

import (
	"errors"
	"strings"
	"testing"
)

func TestParseStations(t *testing.T) {
	input := `# Directional survey export
MD TVD NS EW
(m) (m) (m) (m)
0.0 0.0 0.0 0.0
500.0 498.2 12.5 -3.1
1000.0, 990.7, 48.0, -11.6
1500.0
`

	stations, err := ParseStations(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseStations returned error: %v", err)
	}
	if len(stations) != 4 {
		t.Fatalf("expected 4 stations, got %d", len(stations))
	}

	if stations[1].MD != 500.0 {
		t.Errorf("station 1 MD = %v, want 500", stations[1].MD)
	}
	if stations[1].TVD == nil || *stations[1].TVD != 498.2 {
		t.Errorf("station 1 TVD = %v, want 498.2", stations[1].TVD)
	}
	if stations[2].Easting == nil || *stations[2].Easting != -11.6 {
		t.Errorf("station 2 easting = %v, want -11.6", stations[2].Easting)
	}

	// MD-only line leaves optional columns nil.
	if stations[3].TVD != nil || stations[3].Northing != nil || stations[3].Easting != nil {
		t.Errorf("station 3 should have nil optional columns: %+v", stations[3])
	}
}

func TestParseStationsEmpty(t *testing.T) {
	_, err := ParseStations(strings.NewReader("MD TVD\nno data here\n"))
	if !errors.Is(err, ErrNoStations) {
		t.Errorf("expected ErrNoStations, got %v", err)
	}
}

func TestParseStationsMalformed(t *testing.T) {
	_, err := ParseStations(strings.NewReader("100.0 bogus\n"))
	if err == nil {
		t.Error("expected error for malformed numeric field")
	}
}
