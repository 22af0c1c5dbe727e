package calculation

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/luca-patrignani/flopstats/domain/board"
	"github.com/luca-patrignani/flopstats/domain/poker"
	"github.com/luca-patrignani/flopstats/domain/situation"
)

var sampleLines = []string{
	"8s8d8c\t56.532\t35.471\t69.566\t30.434",
	"6d8s8d\t54.398\t28.831\t6.355\t93.645",
	"4c7dKs\t60\t30\t20\t70",
	"5s5dAs\t58.1\t33.2\t12.5\t87.5",
	"4c7dAs\t40\t20\t10\t50",
	"4d6sTs\t49.9\t21.7\t30.1\t69.9",
	"Kh8h2h\t62.3\t40.1\t55\t45",
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func rowsApprox(a, b StatRow) bool {
	return a.Size == b.Size && approx(a.Equity, b.Equity) && approx(a.EV, b.EV) &&
		approx(a.BetFreq, b.BetFreq) && approx(a.CheckFreq, b.CheckFreq)
}

func TestBuildAggregateRowAverages(t *testing.T) {
	lines := []string{
		"4c7dKs\t60\t30\t20\t70",
		"4c7dAs\t40\t20\t10\t50",
	}
	row, boards, err := BuildAggregateRow(situation.Size33, lines, board.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	want := StatRow{Size: situation.Size33, Equity: 50, EV: 25, BetFreq: 15, CheckFreq: 60}
	if row != want {
		t.Fatalf("expected %+v, got %+v", want, row)
	}
	if len(boards) != 2 || boards[0] != board.MustParse("4c7dKs") || boards[1] != board.MustParse("4c7dAs") {
		t.Fatalf("unexpected boards %v", boards)
	}
}

func TestBuildAggregateRowIdenticalRows(t *testing.T) {
	lines := []string{
		"Ts9c8h\t56.532\t35.471\t69.566\t30.434",
		"Ts9c7h\t56.532\t35.471\t69.566\t30.434",
		"Ts9c6h\t56.532\t35.471\t69.566\t30.434",
	}
	row, _, err := BuildAggregateRow(situation.Size75, lines, board.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	want := StatRow{Size: situation.Size75, Equity: 56.532, EV: 35.471, BetFreq: 69.566, CheckFreq: 30.434}
	if !rowsApprox(row, want) {
		t.Fatalf("expected %+v, got %+v", want, row)
	}
}

func TestBuildAggregateRowFilters(t *testing.T) {
	f := board.Filter{
		Heights:  board.NewSet(board.SingleBroadway, board.Middling),
		Pairings: board.NewSet(board.Unpaired),
	}
	_, boards, err := BuildAggregateRow(situation.Size33, sampleLines, f)
	if err != nil {
		t.Fatal(err)
	}
	got := NewBoardSet(boards)
	want := NewBoardSet([]board.Board{
		board.MustParse("Ks7d4c"),
		board.MustParse("As7d4c"),
		board.MustParse("Ts6s4d"),
		board.MustParse("Kh8h2h"),
	})
	if !got.Equal(want) {
		missing, extra := want.Diff(got)
		t.Fatalf("missing %v, extra %v", missing, extra)
	}

	f = board.Filter{
		Suits:    board.NewSet(board.Twotone),
		Pairings: board.NewSet(board.Paired, board.Trips),
	}
	_, boards, err = BuildAggregateRow(situation.Size50, sampleLines, f)
	if err != nil {
		t.Fatal(err)
	}
	want = NewBoardSet([]board.Board{board.MustParse("8d8s6d"), board.MustParse("As5d5s")})
	if !NewBoardSet(boards).Equal(want) {
		t.Fatalf("unexpected boards %v", boards)
	}
}

func TestBuildAggregateRowSkipsBlankLines(t *testing.T) {
	lines := []string{"", "4c7dKs\t60\t30\t20\t70\r", "   "}
	row, boards, err := BuildAggregateRow(situation.Size33, lines, board.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(boards) != 1 || row.CheckFreq != 70 {
		t.Fatalf("unexpected result %+v %v", row, boards)
	}
}

func TestBuildAggregateRowDuplicate(t *testing.T) {
	lines := []string{
		"Ts9c8h\t50\t25\t10\t90",
		"4c7dKs\t60\t30\t20\t70",
		"8hTs9c\t50\t25\t10\t90",
	}
	_, _, err := BuildAggregateRow(situation.Size33, lines, board.Filter{})
	var de *DuplicateBoardError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateBoardError, got %v", err)
	}
	if de.First != 1 || de.Line != 3 {
		t.Fatalf("unexpected duplicate positions %+v", de)
	}
}

func TestBuildAggregateRowInvalidBoard(t *testing.T) {
	lines := []string{"Ts9c8x\t50\t25\t10\t90"}
	_, _, err := BuildAggregateRow(situation.Size33, lines, board.Filter{})
	var ie *InvalidBoardError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvalidBoardError, got %v", err)
	}
	var pe *poker.ParseError
	if !errors.As(err, &pe) || pe.Kind != "board" {
		t.Fatalf("expected wrapped board ParseError, got %v", err)
	}
}

func TestBuildAggregateRowInvalidNumber(t *testing.T) {
	lines := []string{"Ts9c8h\t50\tx\t10\t90"}
	_, _, err := BuildAggregateRow(situation.Size33, lines, board.Filter{})
	var le *InvalidLineError
	if !errors.As(err, &le) || le.Line != 1 {
		t.Fatalf("expected InvalidLineError on line 1, got %v", err)
	}
	var pe *poker.ParseError
	if !errors.As(err, &pe) || pe.Kind != "number" {
		t.Fatalf("expected number ParseError, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "line 1:") {
		t.Fatalf("expected line context, got %v", err)
	}
}

func TestBuildAggregateRowShortLine(t *testing.T) {
	lines := []string{"Ts9c8h\t50\t25\t10\t90", "4c7dKs\t60\t30"}
	_, _, err := BuildAggregateRow(situation.Size33, lines, board.Filter{})
	var le *InvalidLineError
	if !errors.As(err, &le) || le.Line != 2 {
		t.Fatalf("expected InvalidLineError on line 2, got %v", err)
	}
	var pe *poker.ParseError
	if !errors.As(err, &pe) || pe.Kind != "line" {
		t.Fatalf("expected line ParseError, got %v", err)
	}
}

func TestBuildAggregateRowNoMatch(t *testing.T) {
	f := board.Filter{Heights: board.NewSet(board.TripleBroadway)}
	_, _, err := BuildAggregateRow(situation.Size33, sampleLines, f)
	var ne *NoMatchingBoardsError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NoMatchingBoardsError, got %v", err)
	}
	if ne.Size != situation.Size33 || ne.Filter != "height=3BW" {
		t.Fatalf("unexpected error %+v", ne)
	}
}

func TestBuildAllVariants(t *testing.T) {
	other := make([]string, len(sampleLines))
	for i, l := range sampleLines {
		// same boards, different statistics
		other[len(other)-1-i] = strings.Replace(l, "\t", "\t1", 1)
	}
	src := StaticLines{
		situation.Size33: sampleLines,
		situation.Size75: other,
	}
	f := board.Filter{Pairings: board.NewSet(board.Unpaired)}
	res, err := BuildAllVariants(context.Background(), []situation.Betsize{situation.Size75, situation.Size33}, src, f)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 2 || res.Rows[0].Size != situation.Size75 || res.Rows[1].Size != situation.Size33 {
		t.Fatalf("unexpected rows %+v", res.Rows)
	}
	if len(res.Boards) != 4 {
		t.Fatalf("expected 4 boards, got %v", res.Boards)
	}
	if res.Fingerprint != NewBoardSet(res.Boards).Fingerprint() || len(res.Fingerprint) != 64 {
		t.Fatalf("unexpected fingerprint %q", res.Fingerprint)
	}
	if res.Rows[0].Equity <= res.Rows[1].Equity {
		t.Fatalf("expected the 75 row to use its own statistics: %+v", res.Rows)
	}
}

func TestBuildAllVariantsMismatch(t *testing.T) {
	src := StaticLines{
		situation.Size33: sampleLines,
		situation.Size50: sampleLines[1:],
	}
	_, err := BuildAllVariants(context.Background(), []situation.Betsize{situation.Size33, situation.Size50}, src, board.Filter{})
	var me *SituationMismatchError
	if !errors.As(err, &me) {
		t.Fatalf("expected SituationMismatchError, got %v", err)
	}
	if len(me.Missing) != 1 || me.Missing[0] != "8s8c8d" || len(me.Extra) != 0 {
		t.Fatalf("unexpected diff %+v", me)
	}
	if me.WantFingerprint == me.GotFingerprint {
		t.Fatal("expected different fingerprints")
	}
}

func TestBuildAllVariantsFailureAborts(t *testing.T) {
	src := StaticLines{situation.Size33: sampleLines}
	_, err := BuildAllVariants(context.Background(), []situation.Betsize{situation.Size33, situation.Size150}, src, board.Filter{})
	if err == nil {
		t.Fatal("expected error for missing size")
	}

	bad := StaticLines{
		situation.Size33: sampleLines,
		situation.Size50: append([]string{sampleLines[0]}, sampleLines...),
	}
	_, err = BuildAllVariants(context.Background(), []situation.Betsize{situation.Size33, situation.Size50}, bad, board.Filter{})
	var de *DuplicateBoardError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateBoardError, got %v", err)
	}

	if _, err := BuildAllVariants(context.Background(), nil, src, board.Filter{}); err == nil {
		t.Fatal("expected error for no sizes")
	}
}

func TestBoardSetFingerprintIgnoresOrder(t *testing.T) {
	a := NewBoardSet([]board.Board{board.MustParse("Ts9c8h"), board.MustParse("Kh8h2h")})
	b := NewBoardSet([]board.Board{board.MustParse("2hKh8h"), board.MustParse("8hTs9c")})
	if !a.Equal(b) || a.Fingerprint() != b.Fingerprint() {
		t.Fatal("expected equal sets with equal fingerprints")
	}
}

func TestResultMaxEV(t *testing.T) {
	r := Result{Rows: []StatRow{{EV: 28.557}, {EV: 41.9065}, {EV: 39.07317}}}
	if r.MaxEV() != 1 {
		t.Fatalf("expected 1, got %d", r.MaxEV())
	}
	if (Result{}).MaxEV() != -1 {
		t.Fatal("expected -1 for no rows")
	}
}
