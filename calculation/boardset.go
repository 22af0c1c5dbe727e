package calculation

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/luca-patrignani/flopstats/domain/board"
)

// BoardSet is the set of boards averaged for one bet size.
type BoardSet map[board.Board]struct{}

func NewBoardSet(boards []board.Board) BoardSet {
	s := make(BoardSet, len(boards))
	for _, b := range boards {
		s[b] = struct{}{}
	}
	return s
}

func (s BoardSet) Equal(o BoardSet) bool {
	if len(s) != len(o) {
		return false
	}
	for b := range s {
		if _, ok := o[b]; !ok {
			return false
		}
	}
	return true
}

// Diff returns the boards of s absent from o and the boards of o absent
// from s, each sorted.
func (s BoardSet) Diff(o BoardSet) (missing, extra []string) {
	for b := range s {
		if _, ok := o[b]; !ok {
			missing = append(missing, b.String())
		}
	}
	for b := range o {
		if _, ok := s[b]; !ok {
			extra = append(extra, b.String())
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}

// Fingerprint hashes the canonical, sorted board strings so that equal sets
// share a fingerprint whatever order their boards were listed in.
func (s BoardSet) Fingerprint() string {
	keys := make([]string, 0, len(s))
	for b := range s {
		keys = append(keys, b.String())
	}
	sort.Strings(keys)

	hash := sha256.Sum256([]byte(strings.Join(keys, ",")))
	return hex.EncodeToString(hash[:])
}
