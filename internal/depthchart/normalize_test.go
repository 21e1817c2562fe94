package depthchart

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestGapFillCoverage(t *testing.T) {
	intervals := []Interval{
		{From: 100, To: 150, Fill: CategoryFill{Lithology: "sand"}},
		{From: 200, To: 250, Fill: CategoryFill{Lithology: "shale"}},
	}

	segments := ComputeRenderSegments(intervals, 100, 300)

	if len(segments) != 4 {
		t.Fatalf("expected 4 segments, got %d: %+v", len(segments), segments)
	}

	expected := []struct {
		from, to float64
		isGap    bool
	}{
		{100, 150, false},
		{150, 200, true},
		{200, 250, false},
		{250, 300, true},
	}
	for i, want := range expected {
		got := segments[i]
		if got.From != want.from || got.To != want.to || got.IsGap != want.isGap {
			t.Errorf("segment %d = {from:%v to:%v gap:%v}, want {from:%v to:%v gap:%v}",
				i, got.From, got.To, got.IsGap, want.from, want.to, want.isGap)
		}
	}

	// Heights are relative to the zero-origin span: the covered 100-300
	// window accounts for (300-100)/300 of it, no overlaps, no double
	// counts.
	sum := 0.0
	for _, seg := range segments {
		sum += seg.HeightPct
	}
	want := 100.0 * (300.0 - 100.0) / 300.0
	if !almostEqual(sum, want, 1e-9) {
		t.Errorf("height_pct sum = %v, want %v", sum, want)
	}
}

func TestUnsortedIntervals(t *testing.T) {
	intervals := []Interval{
		{From: 200, To: 250, Fill: CategoryFill{Lithology: "shale"}},
		{From: 100, To: 150, Fill: CategoryFill{Lithology: "sand"}},
	}

	segments := ComputeRenderSegments(intervals, 100, 250)
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	if segments[0].Lithology != "sand" || segments[2].Lithology != "shale" {
		t.Errorf("segments not emitted in start order: %+v", segments)
	}
}

func TestBreakdownNormalization(t *testing.T) {
	intervals := []Interval{
		{From: 0, To: 100, Fill: BreakdownFill{Components: []Component{
			{Type: "sand", Percentage: 40},
			{Type: "clay", Percentage: 20},
			{Type: "silt", Percentage: 0},
		}}},
	}

	segments := ComputeRenderSegments(intervals, 0, 100)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}

	breakdown := segments[0].Breakdown
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 breakdown entries (zero components dropped), got %d", len(breakdown))
	}
	if breakdown[0].Type != "sand" || breakdown[1].Type != "clay" {
		t.Errorf("breakdown not sorted descending by percentage: %+v", breakdown)
	}
	if !almostEqual(breakdown[0].HeightPct, 40.0/60.0*100.0, 1e-9) {
		t.Errorf("sand height_pct = %v, want %v", breakdown[0].HeightPct, 40.0/60.0*100.0)
	}
	if !almostEqual(breakdown[1].HeightPct, 20.0/60.0*100.0, 1e-9) {
		t.Errorf("clay height_pct = %v, want %v", breakdown[1].HeightPct, 20.0/60.0*100.0)
	}
	if !almostEqual(breakdown[0].HeightPct+breakdown[1].HeightPct, 100.0, 1e-9) {
		t.Errorf("breakdown heights sum to %v, want 100", breakdown[0].HeightPct+breakdown[1].HeightPct)
	}
}

func TestZeroTotalBreakdownSkipped(t *testing.T) {
	intervals := []Interval{
		{From: 100, To: 150, Fill: BreakdownFill{Components: []Component{
			{Type: "sand", Percentage: 60},
			{Type: "clay", Percentage: 30},
		}}},
		{From: 150, To: 200, Fill: BreakdownFill{Components: []Component{
			{Type: "sand", Percentage: 0},
		}}},
		{From: 200, To: 250, Fill: BreakdownFill{Components: []Component{
			{Type: "shale", Percentage: 100},
		}}},
	}

	segments := ComputeRenderSegments(intervals, 100, 250)

	// The empty middle interval is absent; its depth shows up as a gap.
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d: %+v", len(segments), segments)
	}
	if segments[1].From != 150 || segments[1].To != 200 || !segments[1].IsGap {
		t.Errorf("expected gap over skipped interval, got %+v", segments[1])
	}
}

func TestNegativeLengthClampsToZero(t *testing.T) {
	intervals := []Interval{
		{From: 200, To: 150, Fill: CategoryFill{Lithology: "sand"}},
	}

	segments := ComputeRenderSegments(intervals, 100, 300)
	var data *RenderSegment
	for i := range segments {
		if !segments[i].IsGap {
			data = &segments[i]
		}
	}
	if data == nil {
		t.Fatal("expected a data segment")
	}
	if data.HeightPct != 0 || data.To != data.From {
		t.Errorf("negative-length interval not clamped: %+v", data)
	}
}

func TestDegenerateWindow(t *testing.T) {
	// maxDepth of zero must epsilon-substitute, never panic or divide by
	// zero.
	segments := ComputeRenderSegments(nil, 0, 0)
	if len(segments) != 0 {
		t.Errorf("expected no segments for empty degenerate window, got %+v", segments)
	}

	segments = ComputeRenderSegments([]Interval{
		{From: 0, To: 0, Fill: CategoryFill{Lithology: "sand"}},
	}, 0, 0)
	for _, seg := range segments {
		if math.IsNaN(seg.HeightPct) || math.IsInf(seg.HeightPct, 0) {
			t.Errorf("degenerate window produced non-finite height: %+v", seg)
		}
	}
}

func TestEventFill(t *testing.T) {
	intervals := []Interval{
		{From: 1200, To: 1210, Fill: EventFill{Formation: "Bokabil"}},
	}

	segments := ComputeRenderSegments(intervals, 1200, 1210)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Formation != "Bokabil" {
		t.Errorf("formation = %q, want Bokabil", segments[0].Formation)
	}
}

func TestNewRange(t *testing.T) {
	r := NewRange(500, 2000)
	if r.Min != 500 || r.Max != 2000 {
		t.Errorf("range = %+v", r)
	}
	if !almostEqual(r.TopSpacerPct, 25.0, 1e-9) {
		t.Errorf("top_spacer_pct = %v, want 25", r.TopSpacerPct)
	}
}
