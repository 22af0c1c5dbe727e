package calculation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/luca-patrignani/flopstats/domain/poker"
	"github.com/luca-patrignani/flopstats/domain/situation"
)

// minFields is the board column plus the four statistics.
const minFields = 5

// StatRow is one solver statistic sample, or the average of several.
type StatRow struct {
	Size      situation.Betsize `json:"size" yaml:"size"`
	Equity    float64           `json:"eq" yaml:"eq"`
	EV        float64           `json:"ev" yaml:"ev"`
	BetFreq   float64           `json:"bet_freq" yaml:"bet_freq"`
	CheckFreq float64           `json:"check_freq" yaml:"check_freq"`
}

// ParseLine splits a solver output line into its board column and the
// untagged statistics that follow. Columns after the fifth are ignored.
func ParseLine(line string) (string, StatRow, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < minFields {
		return "", StatRow{}, poker.NewParseError("line", line,
			fmt.Errorf("expected at least %d tab separated fields, got %d", minFields, len(fields)))
	}

	var vals [4]float64
	for i := range vals {
		v, err := parsePercentage(fields[i+1])
		if err != nil {
			return "", StatRow{}, err
		}
		vals[i] = v
	}

	return fields[0], StatRow{
		Equity:    vals[0],
		EV:        vals[1],
		BetFreq:   vals[2],
		CheckFreq: vals[3],
	}, nil
}

func parsePercentage(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, poker.NewParseError("number", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, poker.NewParseError("number", s, fmt.Errorf("expected a finite non-negative value"))
	}
	return v, nil
}

// Add sums two rows field by field. Both rows must carry the same size.
func (r StatRow) Add(o StatRow) (StatRow, error) {
	if r.Size != o.Size {
		return StatRow{}, fmt.Errorf("cannot add rows of size %s and %s", r.Size, o.Size)
	}
	return StatRow{
		Size:      r.Size,
		Equity:    r.Equity + o.Equity,
		EV:        r.EV + o.EV,
		BetFreq:   r.BetFreq + o.BetFreq,
		CheckFreq: r.CheckFreq + o.CheckFreq,
	}, nil
}

// Div scales every field by 1/n.
func (r StatRow) Div(n int) (StatRow, error) {
	if n <= 0 {
		return StatRow{}, fmt.Errorf("cannot divide row by %d", n)
	}
	d := float64(n)
	return StatRow{
		Size:      r.Size,
		Equity:    r.Equity / d,
		EV:        r.EV / d,
		BetFreq:   r.BetFreq / d,
		CheckFreq: r.CheckFreq / d,
	}, nil
}
