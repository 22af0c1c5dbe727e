// Package solverdata locates and reads solver output files.
//
// Files are laid out as
//
//	<root>/<positions dir>/<betsize dir>/<action file>
//
// where the positions directory name contains both position codes (for
// example "BTN_vs_BB"), the betsize directory is named after the size ("33")
// and the action file name, split on '_', lists the long action names after
// its first part ("flop_check.txt").
package solverdata

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/luca-patrignani/flopstats/calculation"
	"github.com/luca-patrignani/flopstats/domain/situation"
)

// NotFoundError reports a missing directory or file in the data tree.
type NotFoundError struct {
	What string
	Name string
	Dir  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s %s in %s", e.What, e.Name, e.Dir)
}

// Store reads solver output below a root directory.
type Store struct {
	fs     afero.Fs
	root   string
	logger *slog.Logger
}

type option func(Store) Store

// New returns a Store rooted at root on the operating system filesystem.
func New(root string, opts ...option) *Store {
	s := Store{
		fs:     afero.NewOsFs(),
		root:   root,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return &s
}

// WithFs replaces the filesystem, e.g. with afero.NewMemMapFs in tests.
func WithFs(fs afero.Fs) option {
	return func(s Store) Store {
		s.fs = fs
		return s
	}
}

func WithLogger(logger *slog.Logger) option {
	return func(s Store) Store {
		s.logger = logger
		return s
	}
}

// Path returns the solver output file for sit.
func (s *Store) Path(sit situation.Situation) (string, error) {
	posDir, err := s.findDir(s.root, "positions directory", sit.Positions.String(), func(name string) bool {
		upper := strings.ToUpper(name)
		return strings.Contains(upper, string(sit.Positions.IP)) && strings.Contains(upper, string(sit.Positions.OOP))
	})
	if err != nil {
		return "", err
	}
	sizeDir, err := s.findDir(posDir, "betsize directory", sit.Betsize.String(), func(name string) bool {
		return name == string(sit.Betsize)
	})
	if err != nil {
		return "", err
	}
	return s.findFile(sizeDir, sit.Actions)
}

// Lines returns the data lines of the solver output for sit. The header
// line and blank lines are dropped.
func (s *Store) Lines(ctx context.Context, sit situation.Situation) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := s.Path(sit)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("reading solver output", "situation", sit.String(), "file", file)

	content, err := afero.ReadFile(s.fs, file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(content))
	header := true
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	s.logger.Debug("read solver output", "file", file, "lines", len(lines))
	return lines, nil
}

// Source adapts the store to calculation.LineSource for a fixed pair of
// positions and action line.
func (s *Store) Source(pos situation.Positions, actions []situation.Action) calculation.LineSource {
	return source{store: s, positions: pos, actions: actions}
}

type source struct {
	store     *Store
	positions situation.Positions
	actions   []situation.Action
}

func (src source) Lines(ctx context.Context, size situation.Betsize) ([]string, error) {
	return src.store.Lines(ctx, situation.Situation{
		Positions: src.positions,
		Betsize:   size,
		Actions:   src.actions,
	})
}

func (s *Store) findDir(dir, what, name string, match func(string) bool) (string, error) {
	entries, err := s.visible(dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.IsDir() && match(e.Name()) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", &NotFoundError{What: what, Name: name, Dir: dir}
}

func (s *Store) findFile(dir string, actions []situation.Action) (string, error) {
	entries, err := s.visible(dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if !e.IsDir() && matchesActions(e.Name(), actions) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", &NotFoundError{What: "action file", Name: actionNames(actions), Dir: dir}
}

// visible lists dir without hidden entries.
func (s *Store) visible(dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{What: "directory", Name: filepath.Base(dir), Dir: filepath.Dir(dir)}
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	out := entries[:0]
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), ".") {
			out = append(out, e)
		}
	}
	return out, nil
}

// matchesActions reports whether a file name such as "flop_check_bet.txt"
// spells out exactly the given action line after its first part.
func matchesActions(filename string, actions []situation.Action) bool {
	stem := strings.TrimSuffix(filename, path.Ext(filename))
	parts := strings.Split(stem, "_")
	if len(parts)-1 != len(actions) {
		return false
	}
	for i, a := range actions {
		if parts[i+1] != a.LongName() {
			return false
		}
	}
	return true
}

func actionNames(actions []situation.Action) string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.LongName()
	}
	return strings.Join(names, "_")
}
