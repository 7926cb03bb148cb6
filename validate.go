package gogauge

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// angleEps absorbs float error when comparing zone boundary angles.
const angleEps = 1e-6

// Validate checks the spec against the layout invariants and returns an
// error describing all problems found, or nil if the spec is valid.
// Layout itself never checks its input; catalogs are expected to validate
// specs once at construction time.
func (s *GaugeSpec) Validate() error {
	var errs []string

	cv := s.Canvas
	if cv.Size <= 0 {
		errs = append(errs, "canvas size must be positive")
	}
	if cv.RingRadius <= 0 {
		errs = append(errs, "ring radius must be positive")
	}
	if !(cv.RingRadius < cv.OuterRadius && cv.OuterRadius < cv.Size/2) {
		errs = append(errs, "radii must satisfy ring < outer < size/2")
	}
	if len(s.Zones) > 0 && s.Theme.FaceRadius >= cv.RingRadius {
		errs = append(errs, "inner face must sit inside the zone ring")
	}

	if s.Ticks != nil {
		errs = append(errs, validateTicks(s)...)
	} else if len(s.Labels) > 0 {
		errs = append(errs, "labels require a tick style")
	}

	if len(s.Zones) > 0 {
		errs = append(errs, validateZones(s)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid gauge spec %q:\n  %s", s.Name, strings.Join(errs, "\n  "))
}

func validateTicks(s *GaugeSpec) []string {
	var errs []string
	ts := s.Ticks
	if ts.MinorStep <= 0 || ts.MajorStep <= 0 {
		errs = append(errs, "tick steps must be positive")
		return errs
	}
	if r := math.Mod(ts.MajorStep, ts.MinorStep); r > angleEps && ts.MinorStep-r > angleEps {
		errs = append(errs, "major step must be a multiple of the minor step")
		return errs
	}
	if s.Labels != nil {
		majors := len(s.MajorAngles())
		if len(s.Labels) != majors {
			errs = append(errs, fmt.Sprintf("label count %d does not match major tick count %d", len(s.Labels), majors))
		}
	}
	return errs
}

// validateZones checks that the zones, sorted by start angle, are
// contiguous and cover the native arc sweep exactly once. Zones are
// authored in the native frame, which never wraps; wraparound only
// appears after the rotation offset is applied at layout time.
func validateZones(s *GaugeSpec) []string {
	var errs []string

	zones := make([]ColorZone, len(s.Zones))
	copy(zones, s.Zones)
	sort.Slice(zones, func(i, j int) bool { return zones[i].Span.Start < zones[j].Span.Start })

	arcStart, arcEnd := s.Arc.Span()
	for i, z := range zones {
		if z.Span.Sweep() <= 0 {
			errs = append(errs, fmt.Sprintf("zone %d has non-positive sweep", i+1))
		}
	}
	if math.Abs(zones[0].Span.Start-arcStart) > angleEps {
		errs = append(errs, fmt.Sprintf("zones must start at the arc start %g°", arcStart))
	}
	for i := 1; i < len(zones); i++ {
		prev, cur := zones[i-1].Span, zones[i].Span
		switch {
		case cur.Start-prev.End > angleEps:
			errs = append(errs, fmt.Sprintf("gap between zones %d and %d", i, i+1))
		case prev.End-cur.Start > angleEps:
			errs = append(errs, fmt.Sprintf("zones %d and %d overlap", i, i+1))
		}
	}
	if math.Abs(zones[len(zones)-1].Span.End-arcEnd) > angleEps {
		errs = append(errs, fmt.Sprintf("zones must end at the arc end %g°", arcEnd))
	}
	return errs
}
