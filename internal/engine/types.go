package engine

import (
	"fmt"
	"strings"
)

// Stat is one of the four hero accumulators. Quest categories use the same
// four names.
type Stat string

const (
	StatWealth   Stat = "wealth"
	StatStrength Stat = "strength"
	StatWisdom   Stat = "wisdom"
	StatLuck     Stat = "luck"
)

// AllStats lists the stats in display order.
var AllStats = []Stat{StatWealth, StatStrength, StatWisdom, StatLuck}

func (s Stat) IsValid() bool {
	switch s {
	case StatWealth, StatStrength, StatWisdom, StatLuck:
		return true
	default:
		return false
	}
}

func ParseStat(input string) (Stat, error) {
	s := Stat(strings.TrimSpace(strings.ToLower(input)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid stat category: %q", input)
	}
	return s, nil
}

// Quality is the 1-5 self-rating supplied after a completed session. The
// same value feeds both the damage formula and the points formula; the two
// uses are deliberate (see the formulas' parameter names).
const (
	MinQuality = 1
	MaxQuality = 5
)

func ValidQuality(q int) bool {
	return q >= MinQuality && q <= MaxQuality
}
