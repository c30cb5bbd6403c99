package common

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var icaoPattern = regexp.MustCompile(`^[A-Z]{4}$`)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// NormalizeICAO upper-cases and trims an airport identifier
func NormalizeICAO(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsICAO reports whether code (already normalized) is a four-letter ICAO identifier
func IsICAO(code string) bool {
	return icaoPattern.MatchString(code)
}
