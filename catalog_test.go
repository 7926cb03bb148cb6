package gogauge

import "testing"

func TestCatalogEntries(t *testing.T) {
	entries := Catalog()
	if len(entries) != 8 {
		t.Fatalf("expected 8 gauges, got %d", len(entries))
	}

	wantFiles := []string{
		"thrust-gauge.png",
		"engine-gauge.png",
		"positive-gauge.png",
		"weight-gauge.png",
		"negative-gauge.png",
		"fuel-gauge.png",
		"compass-gauge.png",
		"horizon-gauge.png",
	}
	names := make(map[string]bool)
	for i, entry := range entries {
		if entry.Filename != wantFiles[i] {
			t.Errorf("entry %d filename = %q, want %q", i, entry.Filename, wantFiles[i])
		}
		if names[entry.Spec.Name] {
			t.Errorf("duplicate gauge name %q", entry.Spec.Name)
		}
		names[entry.Spec.Name] = true
		if entry.Spec.Canvas != DefaultCanvas() {
			t.Errorf("%s: unexpected canvas %+v", entry.Spec.Name, entry.Spec.Canvas)
		}
	}
}

func TestStandardFamilyShareZoneLayout(t *testing.T) {
	thrust := standardGauge("thrust", "THRUST", "Power")
	engine := standardGauge("engine", "ENGINE", "Condition")
	if len(thrust.Zones) != len(engine.Zones) {
		t.Fatal("zone counts differ")
	}
	for i := range thrust.Zones {
		if thrust.Zones[i] != engine.Zones[i] {
			t.Errorf("zone %d differs between family members", i)
		}
	}
	if thrust.Rotation != 270 || engine.Rotation != 270 {
		t.Error("standard family must be rotated by 270°")
	}
}
