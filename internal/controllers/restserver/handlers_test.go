package restserver

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseReportFilter(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/wells/1/reports?start_date=2026-01-05&end_date=2026-02-01&depth_from=1200.5&depth_to=2400&gas_show=yes", nil)

	filter, err := parseReportFilter(req)
	if err != nil {
		t.Fatalf("parseReportFilter returned error: %v", err)
	}

	wantStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if filter.StartDate == nil || !filter.StartDate.Equal(wantStart) {
		t.Errorf("StartDate = %v, want %v", filter.StartDate, wantStart)
	}
	wantEnd := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if filter.EndDate == nil || !filter.EndDate.Equal(wantEnd) {
		t.Errorf("EndDate = %v, want %v", filter.EndDate, wantEnd)
	}
	if filter.DepthFrom == nil || *filter.DepthFrom != 1200.5 {
		t.Errorf("DepthFrom = %v, want 1200.5", filter.DepthFrom)
	}
	if filter.DepthTo == nil || *filter.DepthTo != 2400 {
		t.Errorf("DepthTo = %v, want 2400", filter.DepthTo)
	}
	if filter.GasShow == nil || !*filter.GasShow {
		t.Errorf("GasShow = %v, want true", filter.GasShow)
	}
}

func TestParseReportFilterEmpty(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/wells/1/reports", nil)

	filter, err := parseReportFilter(req)
	if err != nil {
		t.Fatalf("parseReportFilter returned error: %v", err)
	}
	if filter.StartDate != nil || filter.EndDate != nil || filter.DepthFrom != nil || filter.DepthTo != nil || filter.GasShow != nil {
		t.Errorf("expected zero filter, got %+v", filter)
	}
}

func TestParseReportFilterBadDate(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/wells/1/reports?start_date=05-01-2026", nil)

	if _, err := parseReportFilter(req); err == nil {
		t.Error("expected error for malformed start_date")
	}
}

func TestParseReportFilterIgnoresBadDepth(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/wells/1/reports?depth_from=abc&gas_show=maybe", nil)

	filter, err := parseReportFilter(req)
	if err != nil {
		t.Fatalf("parseReportFilter returned error: %v", err)
	}
	if filter.DepthFrom != nil {
		t.Errorf("DepthFrom = %v, want nil for unparseable value", filter.DepthFrom)
	}
	if filter.GasShow != nil {
		t.Errorf("GasShow = %v, want nil for unrecognized value", filter.GasShow)
	}
}
