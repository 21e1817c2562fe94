package trajectory

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestTVDAt(t *testing.T) {
	stations := []Station{
		{MD: 0, TVD: 0},
		{MD: 1000, TVD: 990},
		{MD: 2000, TVD: 1900},
		{MD: 3000, TVD: 2700},
	}

	tests := []struct {
		name     string
		stations []Station
		md       float64
		want     float64
		eps      float64
	}{
		{
			name:     "exact station",
			stations: stations,
			md:       1000,
			want:     990,
			eps:      1e-9,
		},
		{
			name:     "mid segment",
			stations: stations,
			md:       1500,
			want:     990 + 0.5*(1900-990),
			eps:      1e-9,
		},
		{
			name:     "before first station clamps",
			stations: stations,
			md:       -50,
			want:     0,
			eps:      1e-9,
		},
		{
			name:     "beyond last station extrapolates",
			stations: stations,
			md:       3500,
			// Last segment drops 800 m TVD over 1000 m MD.
			want: 2700 + 0.5*800,
			eps:  1e-9,
		},
		{
			name: "duplicate MD stations never divide by zero",
			stations: []Station{
				{MD: 100, TVD: 95},
				{MD: 200, TVD: 190},
				{MD: 200, TVD: 195},
				{MD: 300, TVD: 290},
			},
			md:   200,
			want: 190,
			eps:  1e-9,
		},
		{
			name: "unsorted input is sorted on construction",
			stations: []Station{
				{MD: 2000, TVD: 1900},
				{MD: 0, TVD: 0},
				{MD: 1000, TVD: 990},
			},
			md:   500,
			want: 495,
			eps:  1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svy := NewSurvey(tt.stations)
			got, err := svy.TVDAt(tt.md)
			if err != nil {
				t.Fatalf("TVDAt(%v) returned error: %v", tt.md, err)
			}
			if !almostEqual(got, tt.want, tt.eps) {
				t.Errorf("TVDAt(%v) = %v, want %v", tt.md, got, tt.want)
			}
		})
	}
}

func TestSingleStationPassthrough(t *testing.T) {
	svy := NewSurvey([]Station{{MD: 1000, TVD: 950}})

	for _, md := range []float64{500, 1000, 1500} {
		got, err := svy.TVDAt(md)
		if err != nil {
			t.Fatalf("TVDAt(%v) returned error: %v", md, err)
		}
		if got != 950 {
			t.Errorf("TVDAt(%v) = %v, want 950", md, got)
		}
	}
}

func TestNoDataContract(t *testing.T) {
	svy := NewSurvey(nil)

	if _, err := svy.TVDAt(1000); !errors.Is(err, ErrNoSurveyData) {
		t.Errorf("TVDAt on empty survey: got %v, want ErrNoSurveyData", err)
	}
	if _, err := svy.MDAt(1000); !errors.Is(err, ErrNoSurveyData) {
		t.Errorf("MDAt on empty survey: got %v, want ErrNoSurveyData", err)
	}
	if _, err := svy.PositionAt(1000); !errors.Is(err, ErrNoSurveyData) {
		t.Errorf("PositionAt on empty survey: got %v, want ErrNoSurveyData", err)
	}
}

func TestMonotonicInterpolation(t *testing.T) {
	svy := NewSurvey([]Station{
		{MD: 0, TVD: 0},
		{MD: 500, TVD: 498},
		{MD: 1200, TVD: 1150},
		{MD: 2500, TVD: 2300},
		{MD: 4000, TVD: 3500},
	})

	prev := math.Inf(-1)
	for md := 0.0; md <= 4000; md += 37.5 {
		tvd, err := svy.TVDAt(md)
		if err != nil {
			t.Fatalf("TVDAt(%v) returned error: %v", md, err)
		}
		if tvd < prev {
			t.Fatalf("TVD not monotonic: TVDAt(%v) = %v < previous %v", md, tvd, prev)
		}
		prev = tvd
	}
}

func TestRoundTrip(t *testing.T) {
	svy := NewSurvey([]Station{
		{MD: 100, TVD: 98},
		{MD: 900, TVD: 870},
		{MD: 1800, TVD: 1700},
		{MD: 2600, TVD: 2380},
	})

	for md := 150.0; md < 2600; md += 111.0 {
		tvd, err := svy.TVDAt(md)
		if err != nil {
			t.Fatalf("TVDAt(%v) returned error: %v", md, err)
		}
		back, err := svy.MDAt(tvd)
		if err != nil {
			t.Fatalf("MDAt(%v) returned error: %v", tvd, err)
		}
		if !almostEqual(back, md, 1e-6) {
			t.Errorf("round trip: MDAt(TVDAt(%v)) = %v", md, back)
		}
	}
}

func TestPositionAt(t *testing.T) {
	stations := []Station{
		{MD: 0, TVD: 0, Northing: 0, Easting: 0},
		{MD: 1000, TVD: 980, Northing: 50, Easting: -20},
		{MD: 2000, TVD: 1900, Northing: 160, Easting: -90},
	}
	svy := NewSurvey(stations)

	t.Run("interpolated", func(t *testing.T) {
		pos, err := svy.PositionAt(1500)
		if err != nil {
			t.Fatalf("PositionAt returned error: %v", err)
		}
		want := Position{MD: 1500, TVD: 1440, Northing: 105, Easting: -55}
		if !almostEqual(pos.TVD, want.TVD, 1e-9) ||
			!almostEqual(pos.Northing, want.Northing, 1e-9) ||
			!almostEqual(pos.Easting, want.Easting, 1e-9) {
			t.Errorf("PositionAt(1500) = %+v, want %+v", pos, want)
		}
	})

	t.Run("extrapolated past last station", func(t *testing.T) {
		pos, err := svy.PositionAt(2500)
		if err != nil {
			t.Fatalf("PositionAt returned error: %v", err)
		}
		// Half of the last segment's deltas projected past the end.
		want := Position{MD: 2500, TVD: 1900 + 460, Northing: 160 + 55, Easting: -90 - 35}
		if !almostEqual(pos.TVD, want.TVD, 1e-9) ||
			!almostEqual(pos.Northing, want.Northing, 1e-9) ||
			!almostEqual(pos.Easting, want.Easting, 1e-9) {
			t.Errorf("PositionAt(2500) = %+v, want %+v", pos, want)
		}
	})
}
