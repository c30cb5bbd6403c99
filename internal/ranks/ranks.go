// Package ranks maps accumulated flight hours to pilot rank tiers.
package ranks

import "math"

// Tier is a named band of accumulated hours. MaxHours is nil for the terminal tier.
type Tier struct {
	Name     string   `json:"name"`
	MinHours float64  `json:"min_hours"`
	MaxHours *float64 `json:"max_hours,omitempty"`
}

// TierProgress describes how far a pilot is through the current tier
type TierProgress struct {
	Current        Tier    `json:"current"`
	Next           *Tier   `json:"next,omitempty"`
	Percent        float64 `json:"percent"`
	HoursRemaining float64 `json:"hours_remaining"`
}

func bound(h float64) *float64 { return &h }

// clone copies t so callers never share MaxHours with the table
func (t Tier) clone() Tier {
	if t.MaxHours != nil {
		t.MaxHours = bound(*t.MaxHours)
	}
	return t
}

// Ascending by MinHours. Each MaxHours equals the next tier's MinHours.
var tiers = []Tier{
	{Name: "Cadet", MinHours: 0, MaxHours: bound(25)},
	{Name: "Second Officer", MinHours: 25, MaxHours: bound(100)},
	{Name: "First Officer", MinHours: 100, MaxHours: bound(250)},
	{Name: "Senior First Officer", MinHours: 250, MaxHours: bound(500)},
	{Name: "Captain", MinHours: 500, MaxHours: bound(1000)},
	{Name: "Senior Captain", MinHours: 1000, MaxHours: bound(2000)},
	{Name: "Commander", MinHours: 2000},
}

// Tiers returns a copy of the rank table
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		out[i] = t.clone()
	}
	return out
}

// Lookup returns the highest tier whose lower bound is at or below hours
func Lookup(hours float64) Tier {
	_, t := lookup(hours)
	return t
}

func lookup(hours float64) (int, Tier) {
	for i := len(tiers) - 1; i >= 0; i-- {
		if tiers[i].MinHours <= hours {
			return i, tiers[i].clone()
		}
	}
	return 0, tiers[0].clone()
}

// Progress computes linear progress from the current tier towards the next one.
// The terminal tier always reports 100% with nothing remaining.
func Progress(hours float64) TierProgress {
	idx, current := lookup(hours)
	if idx == len(tiers)-1 {
		return TierProgress{Current: current, Percent: 100, HoursRemaining: 0}
	}

	next := tiers[idx+1].clone()
	span := next.MinHours - current.MinHours
	percent := (hours - current.MinHours) / span * 100
	percent = math.Max(0, math.Min(100, percent))
	remaining := math.Max(0, next.MinHours-hours)

	return TierProgress{
		Current:        current,
		Next:           &next,
		Percent:        round1(percent),
		HoursRemaining: round1(remaining),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
