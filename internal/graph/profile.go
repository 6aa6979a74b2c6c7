package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"routenav/internal/model"
)

// TimePattern scales traffic for locations matching its predicate. Empty
// Hours/Days/Areas mean "no restriction" on that dimension.
type TimePattern struct {
	Name       string
	Hours      []int
	Days       []int
	Areas      []string
	Multiplier float64
}

func (p TimePattern) applies(location string, hour, day int) bool {
	if len(p.Hours) > 0 && !containsInt(p.Hours, hour) {
		return false
	}
	if len(p.Days) > 0 && !containsInt(p.Days, day) {
		return false
	}
	if len(p.Areas) > 0 && !containsString(p.Areas, location) {
		return false
	}
	return true
}

// Profile is the historical traffic reference data. Patterns keep a fixed
// evaluation order; they are not mutually exclusive and all applicable
// multipliers compose multiplicatively.
type Profile struct {
	AreaBase map[string]float64
	Patterns []TimePattern
	Weather  map[string]float64
}

// profileFile mirrors the historical_traffic.json layout.
type profileFile struct {
	AreaBaseTraffic map[string]float64 `json:"area_base_traffic"`
	TrafficPatterns struct {
		MorningRush  patternFile `json:"weekday_morning_rush"`
		EveningRush  patternFile `json:"weekday_evening_rush"`
		NightMinimal patternFile `json:"night_minimal"`
		WeekendLight patternFile `json:"weekend_light"`
	} `json:"traffic_patterns"`
	WeatherImpact map[string]float64 `json:"weather_impact"`
}

type patternFile struct {
	Hours         []int    `json:"hours"`
	Days          []int    `json:"days"`
	AffectedAreas []string `json:"affected_areas"`
	Multiplier    float64  `json:"multiplier"`
}

// LoadProfile reads and validates a traffic profile file. The four named
// patterns are ordered morning-rush, evening-rush, night-minimal, weekend.
func LoadProfile(path string) (Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read traffic profile: %w", err)
	}
	var pf profileFile
	if err := json.Unmarshal(b, &pf); err != nil {
		return Profile{}, fmt.Errorf("parse traffic profile: %w", err)
	}
	prof := Profile{AreaBase: pf.AreaBaseTraffic, Weather: pf.WeatherImpact}
	all := []TimePattern{
		patternFrom("weekday_morning_rush", pf.TrafficPatterns.MorningRush),
		patternFrom("weekday_evening_rush", pf.TrafficPatterns.EveningRush),
		patternFrom("night_minimal", pf.TrafficPatterns.NightMinimal),
		patternFrom("weekend_light", pf.TrafficPatterns.WeekendLight),
	}
	for _, tp := range all {
		// A zero multiplier means the pattern is absent from the file.
		if tp.Multiplier == 0 && len(tp.Hours) == 0 && len(tp.Days) == 0 && len(tp.Areas) == 0 {
			continue
		}
		prof.Patterns = append(prof.Patterns, tp)
	}
	return prof, prof.validate()
}

func patternFrom(name string, pf patternFile) TimePattern {
	return TimePattern{Name: name, Hours: pf.Hours, Days: pf.Days, Areas: pf.AffectedAreas, Multiplier: pf.Multiplier}
}

func (p Profile) validate() error {
	for _, tp := range p.Patterns {
		if tp.Multiplier < 0 {
			return fmt.Errorf("pattern %s: multiplier must be >= 0", tp.Name)
		}
		for _, h := range tp.Hours {
			if h < 0 || h > 23 {
				return fmt.Errorf("pattern %s: hour %d out of range", tp.Name, h)
			}
		}
		for _, d := range tp.Days {
			if d < 0 || d > 6 {
				return fmt.Errorf("pattern %s: day %d out of range", tp.Name, d)
			}
		}
	}
	for area, m := range p.AreaBase {
		if m < 0 {
			return fmt.Errorf("area %s: base multiplier must be >= 0", area)
		}
	}
	for cond, m := range p.Weather {
		if m < 0 {
			return fmt.Errorf("weather %s: multiplier must be >= 0", cond)
		}
	}
	return nil
}

// LoadLocations reads a locations file keyed by name and returns the
// locations sorted by name for deterministic graph construction.
func LoadLocations(path string) ([]model.Location, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locations: %w", err)
	}
	var raw map[string]struct {
		Lat      float64 `json:"lat"`
		Lng      float64 `json:"lng"`
		Type     string  `json:"type"`
		AreaType string  `json:"area_type"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse locations: %w", err)
	}
	locs := make([]model.Location, 0, len(raw))
	for name, info := range raw {
		locs = append(locs, model.Location{Name: name, Lat: info.Lat, Lng: info.Lng, Type: info.Type, AreaType: info.AreaType})
	}
	sort.Slice(locs, func(i, j int) bool { return locs[i].Name < locs[j].Name })
	return locs, nil
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
