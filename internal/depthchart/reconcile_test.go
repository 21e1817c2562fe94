package depthchart

import (
	"testing"
)

func TestReconcileAlignment(t *testing.T) {
	progRange := NewRange(500, 1000)
	lithRange := NewRange(600, 1200)

	progSegs := []RenderSegment{
		{From: 500, To: 1000, HeightPct: 50},
	}
	lithSegs := []RenderSegment{
		{From: 600, To: 900, HeightPct: 25},
		{From: 900, To: 1200, HeightPct: 25, IsGap: true},
	}

	combined := Reconcile(progSegs, &progRange, lithSegs, &lithRange, 1300)
	if combined == nil {
		t.Fatal("expected combined range, got nil")
	}

	if combined.Min != 500 {
		t.Errorf("combined min = %v, want 500", combined.Min)
	}
	if combined.Max != 1300 {
		t.Errorf("combined max = %v, want 1300", combined.Max)
	}
	if !almostEqual(combined.TopSpacerPct, 500.0/1300.0*100.0, 1e-6) {
		t.Errorf("top_spacer_pct = %v, want %v", combined.TopSpacerPct, 500.0/1300.0*100.0)
	}

	// Heights rescaled against the combined denominator.
	if !almostEqual(progSegs[0].HeightPctCombined, 500.0/1300.0*100.0, 1e-9) {
		t.Errorf("prognosis height_pct_combined = %v", progSegs[0].HeightPctCombined)
	}
	if !almostEqual(lithSegs[0].HeightPctCombined, 300.0/1300.0*100.0, 1e-9) {
		t.Errorf("lithology height_pct_combined = %v", lithSegs[0].HeightPctCombined)
	}
	// Gap segments rescale too; both tracks must cover the same span.
	if !almostEqual(lithSegs[1].HeightPctCombined, 300.0/1300.0*100.0, 1e-9) {
		t.Errorf("gap height_pct_combined = %v", lithSegs[1].HeightPctCombined)
	}
}

func TestReconcileSingleSource(t *testing.T) {
	lithRange := NewRange(100, 800)
	lithSegs := []RenderSegment{{From: 100, To: 800, HeightPct: 87.5}}

	combined := Reconcile(nil, nil, lithSegs, &lithRange, 0)
	if combined == nil {
		t.Fatal("expected combined range, got nil")
	}
	if combined.Min != 100 || combined.Max != 800 {
		t.Errorf("combined range = %+v, want min 100 max 800", combined)
	}
	if !almostEqual(lithSegs[0].HeightPctCombined, 700.0/800.0*100.0, 1e-9) {
		t.Errorf("height_pct_combined = %v", lithSegs[0].HeightPctCombined)
	}
}

func TestReconcileLatestDepthOnly(t *testing.T) {
	// A well with reports but no prognosis or lithology rows has no
	// ranges: nothing to reconcile.
	if combined := Reconcile(nil, nil, nil, nil, 1500); combined != nil {
		t.Errorf("expected nil combined range, got %+v", combined)
	}
}

func TestReconcileNoSources(t *testing.T) {
	if combined := Reconcile(nil, nil, nil, nil, 0); combined != nil {
		t.Errorf("expected nil combined range, got %+v", combined)
	}
}
