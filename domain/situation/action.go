package situation

import (
	"strings"

	"github.com/luca-patrignani/flopstats/domain/poker"
)

type Action string

const (
	Check Action = "X"
	Bet   Action = "B"
	Call  Action = "C"
	Raise Action = "R"
	Fold  Action = "F"
)

var longNames = map[Action]string{
	Check: "check",
	Bet:   "bet",
	Call:  "call",
	Raise: "raise",
	Fold:  "fold",
}

// ParseAction parses a single action code such as "X".
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := longNames[a]; !ok {
		return "", poker.NewParseError("action", s)
	}
	return a, nil
}

// ParseActions parses the action line leading to the decision. At least one
// action is required.
func ParseActions(codes []string) ([]Action, error) {
	if len(codes) == 0 {
		return nil, poker.NewParseError("actions", "")
	}
	out := make([]Action, 0, len(codes))
	for _, code := range codes {
		a, err := ParseAction(code)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// LongName is the spelling used in solver output file names.
func (a Action) LongName() string {
	return longNames[a]
}

func joinCodes(codes []string) string {
	return strings.Join(codes, ",")
}
