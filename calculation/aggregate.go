package calculation

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/luca-patrignani/flopstats/domain/board"
	"github.com/luca-patrignani/flopstats/domain/poker"
	"github.com/luca-patrignani/flopstats/domain/situation"
)

// LineSource yields the data lines (header excluded) of the solver output
// for one bet size.
type LineSource interface {
	Lines(ctx context.Context, size situation.Betsize) ([]string, error)
}

// StaticLines serves lines from memory.
type StaticLines map[situation.Betsize][]string

func (s StaticLines) Lines(_ context.Context, size situation.Betsize) ([]string, error) {
	lines, ok := s[size]
	if !ok {
		return nil, fmt.Errorf("no solver output for size %s", size)
	}
	return lines, nil
}

// Result is the averaged statistics of every requested bet size together
// with the boards they were averaged over.
type Result struct {
	Rows        []StatRow
	Boards      []board.Board
	Fingerprint string
}

// BuildAggregateRow averages the statistics of every line whose board
// matches f and tags the average with size. It returns the matching boards
// in input order. Blank lines are skipped; line numbers in errors count
// from 1 over the given lines.
func BuildAggregateRow(size situation.Betsize, lines []string, f board.Filter) (StatRow, []board.Board, error) {
	seen := make(map[board.Board]int, len(lines))
	var (
		sum     StatRow
		matched []board.Board
	)

	for i, line := range lines {
		n := i + 1
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		boardStr, row, err := ParseLine(line)
		if err != nil {
			return StatRow{}, nil, &InvalidLineError{Line: n, Err: err}
		}
		b, err := board.Parse(boardStr)
		if err != nil {
			return StatRow{}, nil, &InvalidBoardError{Line: n, Board: boardStr, Err: err}
		}
		if first, dup := seen[b]; dup {
			return StatRow{}, nil, &DuplicateBoardError{Board: b.String(), First: first, Line: n}
		}
		seen[b] = n

		if !f.Matches(b) {
			continue
		}
		if sum, err = sum.Add(row); err != nil {
			return StatRow{}, nil, err
		}
		matched = append(matched, b)
	}

	if len(matched) == 0 {
		return StatRow{}, nil, &NoMatchingBoardsError{Size: size, Filter: f.String()}
	}

	avg, err := sum.Div(len(matched))
	if err != nil {
		return StatRow{}, nil, err
	}
	avg.Size = size
	return avg, matched, nil
}

// BuildAllVariants aggregates every size concurrently and checks that all
// of them were averaged over the same boards. The first failure aborts the
// request; rows come back in the order of sizes.
func BuildAllVariants(ctx context.Context, sizes []situation.Betsize, src LineSource, f board.Filter) (Result, error) {
	if len(sizes) == 0 {
		return Result{}, poker.NewParseError("betsizes", "")
	}

	rows := make([]StatRow, len(sizes))
	boards := make([][]board.Board, len(sizes))

	g, gctx := errgroup.WithContext(ctx)
	for i, size := range sizes {
		i, size := i, size
		g.Go(func() error {
			lines, err := src.Lines(gctx, size)
			if err != nil {
				return err
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			row, matched, err := BuildAggregateRow(size, lines, f)
			if err != nil {
				return fmt.Errorf("size %s: %w", size, err)
			}
			rows[i], boards[i] = row, matched
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	want := NewBoardSet(boards[0])
	for i := 1; i < len(sizes); i++ {
		got := NewBoardSet(boards[i])
		if want.Equal(got) {
			continue
		}
		missing, extra := want.Diff(got)
		return Result{}, &SituationMismatchError{
			Want:            sizes[0],
			Got:             sizes[i],
			WantFingerprint: want.Fingerprint(),
			GotFingerprint:  got.Fingerprint(),
			Missing:         missing,
			Extra:           extra,
		}
	}

	return Result{
		Rows:        rows,
		Boards:      boards[0],
		Fingerprint: want.Fingerprint(),
	}, nil
}

// MaxEV returns the index of the row with the highest EV, or -1 for none.
func (r Result) MaxEV() int {
	best := -1
	for i, row := range r.Rows {
		if best == -1 || row.EV > r.Rows[best].EV {
			best = i
		}
	}
	return best
}
