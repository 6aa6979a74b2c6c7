package graph

import (
	"fmt"
	"math"

	"routenav/internal/model"
)

const earthRadiusKm = 6371.0

// Builder holds the validated location set and traffic profile and serves
// static and dynamic graphs over them. Safe for concurrent use after
// construction; nothing is mutated afterwards.
type Builder struct {
	locations map[string]model.Location
	names     []string
	profile   Profile
	static    Graph
}

// NewBuilder validates the location set and builds the static complete
// distance graph. Malformed coordinates are rejected here, never during
// distance computation.
func NewBuilder(locations []model.Location, profile Profile) (*Builder, error) {
	b := &Builder{locations: make(map[string]model.Location, len(locations)), profile: profile}
	for _, loc := range locations {
		if loc.Name == "" {
			return nil, fmt.Errorf("location with empty name")
		}
		if _, dup := b.locations[loc.Name]; dup {
			return nil, fmt.Errorf("duplicate location: %s", loc.Name)
		}
		if math.IsNaN(loc.Lat) || math.IsNaN(loc.Lng) {
			return nil, fmt.Errorf("location %s: coordinate is NaN", loc.Name)
		}
		if loc.Lat < -90 || loc.Lat > 90 {
			return nil, fmt.Errorf("location %s: latitude %v out of range", loc.Name, loc.Lat)
		}
		if loc.Lng < -180 || loc.Lng > 180 {
			return nil, fmt.Errorf("location %s: longitude %v out of range", loc.Name, loc.Lng)
		}
		b.locations[loc.Name] = loc
		b.names = append(b.names, loc.Name)
	}
	b.static = make(Graph, len(b.names))
	for _, from := range b.names {
		edges := make(map[string]float64, len(b.names)-1)
		for _, to := range b.names {
			if from == to {
				continue
			}
			edges[to] = haversineKm(b.locations[from], b.locations[to])
		}
		b.static[from] = edges
	}
	return b, nil
}

// haversineKm is the great-circle distance between two locations.
func haversineKm(a, b model.Location) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Static returns the unadjusted distance graph. Callers must not mutate it.
func (b *Builder) Static() Graph { return b.static }

// Multiplier combines the location's base multiplier, every applicable time
// pattern, and the weather factor for the given snapshot. Unlisted areas and
// unrecognized weather default to 1.0.
func (b *Builder) Multiplier(location string, hour, day int, weather string) float64 {
	m, ok := b.profile.AreaBase[location]
	if !ok {
		m = 1.0
	}
	for _, p := range b.profile.Patterns {
		if p.applies(location, hour, day) {
			m *= p.Multiplier
		}
	}
	if w, ok := b.profile.Weather[weather]; ok {
		m *= w
	}
	return m
}

// Dynamic derives a traffic-adjusted graph for the snapshot. Every outgoing
// edge of a source is scaled by that source's multiplier, so the result is
// asymmetric even though base distances are symmetric. The returned graph is
// fresh per call and never cached here.
func (b *Builder) Dynamic(hour, day int, weather string) Graph {
	dyn := make(Graph, len(b.static))
	for from, edges := range b.static {
		mult := b.Multiplier(from, hour, day, weather)
		scaled := make(map[string]float64, len(edges))
		for to, dist := range edges {
			scaled[to] = dist * mult
		}
		dyn[from] = scaled
	}
	return dyn
}

// Coords returns the coordinate lookup used by search heuristics.
func (b *Builder) Coords() map[string]model.GeoPoint {
	out := make(map[string]model.GeoPoint, len(b.locations))
	for name, loc := range b.locations {
		out[name] = model.GeoPoint{Lat: loc.Lat, Lng: loc.Lng}
	}
	return out
}

// Locations returns all locations in load order (sorted by name when loaded
// through LoadLocations).
func (b *Builder) Locations() []model.Location {
	out := make([]model.Location, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, b.locations[name])
	}
	return out
}

// Location looks up a single location by name.
func (b *Builder) Location(name string) (model.Location, bool) {
	loc, ok := b.locations[name]
	return loc, ok
}
