// Package report renders aggregation results for terminals and machines.
package report

import (
	"fmt"
	"io"

	"github.com/luca-patrignani/flopstats/calculation"
	"github.com/luca-patrignani/flopstats/config"
	"github.com/luca-patrignani/flopstats/domain/board"
)

// Renderer writes a Result to w.
type Renderer interface {
	Render(w io.Writer, res calculation.Result) error
}

// New returns the renderer for a config format.
func New(format string) (Renderer, error) {
	switch format {
	case config.FormatTable:
		return Table{}, nil
	case config.FormatYAML:
		return YAML{}, nil
	case config.FormatJSON:
		return JSON{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// BoardEntry is a board with its texture codes.
type BoardEntry struct {
	Board         string `json:"board" yaml:"board"`
	Height        string `json:"height" yaml:"height"`
	Suit          string `json:"suit" yaml:"suit"`
	Pairing       string `json:"pairing" yaml:"pairing"`
	Connectedness string `json:"connectedness" yaml:"connectedness"`
}

// Document is the serialisable form of a Result.
type Document struct {
	Fingerprint string                `json:"fingerprint" yaml:"fingerprint"`
	Count       int                   `json:"count" yaml:"count"`
	Best        string                `json:"best" yaml:"best"`
	Rows        []calculation.StatRow `json:"rows" yaml:"rows"`
	Boards      []BoardEntry          `json:"boards" yaml:"boards"`
}

// NewDocument converts res, listing boards strongest first.
func NewDocument(res calculation.Result) Document {
	doc := Document{
		Fingerprint: res.Fingerprint,
		Count:       len(res.Boards),
		Rows:        res.Rows,
		Boards:      make([]BoardEntry, 0, len(res.Boards)),
	}
	if i := res.MaxEV(); i >= 0 {
		doc.Best = res.Rows[i].Size.String()
	}
	for _, b := range sortedBoards(res.Boards) {
		t := b.Texture()
		doc.Boards = append(doc.Boards, BoardEntry{
			Board:         b.String(),
			Height:        t.Height.String(),
			Suit:          t.Suit.String(),
			Pairing:       t.Pairing.String(),
			Connectedness: t.Connectedness.String(),
		})
	}
	return doc
}

// sortedBoards returns a strength ordered copy of boards.
func sortedBoards(boards []board.Board) []board.Board {
	out := make([]board.Board, len(boards))
	copy(out, boards)
	board.SortByStrength(out)
	return out
}
