package calculation

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/flopstats/domain/situation"
)

// InvalidBoardError reports a line whose board column is not a valid flop.
type InvalidBoardError struct {
	Line  int
	Board string
	Err   error
}

func (e *InvalidBoardError) Error() string {
	return fmt.Sprintf("line %d: invalid board %q: %v", e.Line, e.Board, e.Err)
}

func (e *InvalidBoardError) Unwrap() error {
	return e.Err
}

// InvalidLineError reports a line whose layout or statistics cannot be read.
type InvalidLineError struct {
	Line int
	Err  error
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *InvalidLineError) Unwrap() error {
	return e.Err
}

// DuplicateBoardError reports a board listed twice in one solver output.
type DuplicateBoardError struct {
	Board string
	First int
	Line  int
}

func (e *DuplicateBoardError) Error() string {
	return fmt.Sprintf("line %d: board %s already listed on line %d", e.Line, e.Board, e.First)
}

// NoMatchingBoardsError reports a filter that selected nothing.
type NoMatchingBoardsError struct {
	Size   situation.Betsize
	Filter string
}

func (e *NoMatchingBoardsError) Error() string {
	return fmt.Sprintf("no boards matching %s for size %s", e.Filter, e.Size)
}

// SituationMismatchError reports two bet sizes whose retained boards differ.
type SituationMismatchError struct {
	Want, Got                       situation.Betsize
	WantFingerprint, GotFingerprint string
	Missing, Extra                  []string
}

func (e *SituationMismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "boards of size %s (%s) differ from size %s (%s)",
		e.Got, short(e.GotFingerprint), e.Want, short(e.WantFingerprint))
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing %s", strings.Join(e.Missing, ","))
	}
	if len(e.Extra) > 0 {
		fmt.Fprintf(&b, "; extra %s", strings.Join(e.Extra, ","))
	}
	return b.String()
}

func short(fingerprint string) string {
	if len(fingerprint) > 12 {
		return fingerprint[:12]
	}
	return fingerprint
}
