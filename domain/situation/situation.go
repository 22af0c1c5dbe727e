// Package situation identifies one solver output: the two players, the bet
// size and the action line that leads to the flop decision.
package situation

import "strings"

// Situation names a single solver output file.
type Situation struct {
	Positions Positions
	Betsize   Betsize
	Actions   []Action
}

func (s Situation) String() string {
	names := make([]string, len(s.Actions))
	for i, a := range s.Actions {
		names[i] = a.LongName()
	}
	return s.Positions.String() + " " + s.Betsize.String() + "% " + strings.Join(names, "-")
}
