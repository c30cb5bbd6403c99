package geo

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed airports.yaml
var airportsYAML []byte

// Coordinate is a point in decimal degrees
type Coordinate struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lon float64 `yaml:"lon" json:"lon"`
}

// Airport is one entry of the reference coordinate table
type Airport struct {
	ICAO    string `yaml:"-" json:"icao"`
	Name    string `yaml:"name" json:"name"`
	City    string `yaml:"city" json:"city"`
	Country string `yaml:"country" json:"country"`
	Coordinate `yaml:",inline"`
}

var table = mustLoadTable(airportsYAML)

func mustLoadTable(raw []byte) map[string]Airport {
	t, err := parseTable(raw)
	if err != nil {
		panic(fmt.Sprintf("geo: invalid embedded airport table: %v", err))
	}
	return t
}

func parseTable(raw []byte) (map[string]Airport, error) {
	var entries map[string]Airport
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode airport table: %w", err)
	}

	out := make(map[string]Airport, len(entries))
	for code, a := range entries {
		key := normalize(code)
		if len(key) != 4 {
			return nil, fmt.Errorf("airport %q: ICAO code must be 4 characters", code)
		}
		if a.Lat < -90 || a.Lat > 90 || a.Lon < -180 || a.Lon > 180 {
			return nil, fmt.Errorf("airport %q: coordinates out of range", code)
		}
		a.ICAO = key
		out[key] = a
	}
	return out, nil
}

func normalize(icao string) string {
	return strings.ToUpper(strings.TrimSpace(icao))
}

// Lookup returns the table entry for an ICAO code (case-insensitive)
func Lookup(icao string) (Airport, bool) {
	a, ok := table[normalize(icao)]
	return a, ok
}

// Airports returns every table entry sorted by ICAO code
func Airports() []Airport {
	out := make([]Airport, 0, len(table))
	for _, a := range table {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ICAO < out[j].ICAO })
	return out
}
