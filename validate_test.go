package gogauge

import (
	"strings"
	"testing"
)

func TestCatalogSpecsAreValid(t *testing.T) {
	for _, entry := range Catalog() {
		if err := entry.Spec.Validate(); err != nil {
			t.Errorf("%s: %v", entry.Spec.Name, err)
		}
	}
}

func TestValidateZoneOverlap(t *testing.T) {
	spec := standardGauge("bad", "", "")
	spec.Zones[1].Span.Start = -60 // overlaps the red zone
	err := spec.Validate()
	if err == nil {
		t.Fatal("expected error for overlapping zones")
	}
	if !strings.Contains(err.Error(), "overlap") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateZoneGap(t *testing.T) {
	spec := standardGauge("bad", "", "")
	spec.Zones[1].Span.Start = -20
	err := spec.Validate()
	if err == nil {
		t.Fatal("expected error for zone gap")
	}
	if !strings.Contains(err.Error(), "gap") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateZoneCoverage(t *testing.T) {
	spec := standardGauge("bad", "", "")
	spec.Zones[2].Span.End = 100 // falls short of the arc end
	err := spec.Validate()
	if err == nil {
		t.Fatal("expected error for incomplete coverage")
	}
	if !strings.Contains(err.Error(), "arc end") {
		t.Errorf("unexpected error: %v", err)
	}

	spec = standardGauge("bad", "", "")
	spec.Zones[0].Span.Start = -110 // starts late
	if err := spec.Validate(); err == nil {
		t.Error("expected error for zones not starting at the arc start")
	}
}

func TestValidateLabelCount(t *testing.T) {
	spec := standardGauge("bad", "", "")
	spec.Labels = []string{"0", "100"}
	err := spec.Validate()
	if err == nil {
		t.Fatal("expected error for label count mismatch")
	}
	if !strings.Contains(err.Error(), "label count") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRadii(t *testing.T) {
	spec := standardGauge("bad", "", "")
	spec.Canvas.OuterRadius = 250 // outer must stay inside size/2
	if err := spec.Validate(); err == nil {
		t.Error("expected error for outer radius outside the canvas")
	}

	spec = standardGauge("bad", "", "")
	spec.Theme.FaceRadius = 150 // face would hide the whole ring
	if err := spec.Validate(); err == nil {
		t.Error("expected error for face radius covering the ring")
	}
}

func TestValidateLabelsRequireTicks(t *testing.T) {
	spec := horizonGauge()
	spec.Labels = []string{"up"}
	if err := spec.Validate(); err == nil {
		t.Error("expected error for labels without a tick style")
	}
}

func TestValidateTickSteps(t *testing.T) {
	spec := standardGauge("bad", "", "")
	spec.Ticks.MajorStep = 25 // not a multiple of 10
	if err := spec.Validate(); err == nil {
		t.Error("expected error for non-multiple major step")
	}

	spec = standardGauge("bad", "", "")
	spec.Ticks.MinorStep = 0
	if err := spec.Validate(); err == nil {
		t.Error("expected error for zero minor step")
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	spec := standardGauge("bad", "", "")
	spec.Labels = []string{"x"}
	spec.Zones[2].Span.End = 100
	err := spec.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "label count") || !strings.Contains(msg, "arc end") {
		t.Errorf("expected aggregated errors, got: %v", err)
	}
}
