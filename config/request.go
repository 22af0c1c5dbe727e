package config

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/luca-patrignani/flopstats/domain/board"
	"github.com/luca-patrignani/flopstats/domain/situation"
)

// Request is a validated summary query.
type Request struct {
	Positions situation.Positions
	Betsizes  []situation.Betsize
	Actions   []situation.Action
	Filter    board.Filter
}

// RawRequest holds unparsed request codes. Codes are case-insensitive.
type RawRequest struct {
	Positions   []string
	Betsizes    []string
	Actions     []string
	Heights     []string
	Suits       []string
	Connections []string
	Pairings    []string
}

// Parse validates every code of r.
func (r RawRequest) Parse() (Request, error) {
	pos, err := situation.ParsePositions(normalize(r.Positions))
	if err != nil {
		return Request{}, err
	}
	sizes, err := situation.ParseBetsizes(normalize(r.Betsizes))
	if err != nil {
		return Request{}, err
	}
	actions, err := situation.ParseActions(normalize(r.Actions))
	if err != nil {
		return Request{}, err
	}
	f, err := board.ParseFilter(normalize(r.Heights), normalize(r.Suits), normalize(r.Connections), normalize(r.Pairings))
	if err != nil {
		return Request{}, err
	}
	return Request{Positions: pos, Betsizes: sizes, Actions: actions, Filter: f}, nil
}

// normalize trims and upper-cases codes, splitting any that still hold
// commas and dropping empty ones.
func normalize(codes []string) []string {
	var out []string
	for _, c := range codes {
		for _, part := range strings.Split(c, ",") {
			part = strings.ToUpper(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Flags is the flag set shared by the flopstats commands.
type Flags struct {
	*pflag.FlagSet
	ConfigFile string
	raw        RawRequest
}

// NewFlags registers the request flags (-p, -b, -a, -H, -s, -c, -r) and
// the config flags (--config, --data-dir, --log-level, --format, --listen).
func NewFlags(name string) *Flags {
	f := &Flags{FlagSet: pflag.NewFlagSet(name, pflag.ContinueOnError)}

	f.StringSliceVarP(&f.raw.Positions, "positions", "p", nil, "in position and out of position player, e.g. BTN,BB")
	f.StringSliceVarP(&f.raw.Betsizes, "betsizes", "b", nil, "bet sizes to compare (33,50,75,150); all when empty")
	f.StringSliceVarP(&f.raw.Actions, "actions", "a", nil, "action line before the decision (X,B,C,R,F)")
	f.StringSliceVarP(&f.raw.Heights, "heights", "H", nil, "board heights (1BW,2BW,3BW,MID,LOW)")
	f.StringSliceVarP(&f.raw.Suits, "suits", "s", nil, "suit patterns (R,T,M)")
	f.StringSliceVarP(&f.raw.Connections, "connections", "c", nil, "connectedness (DC,GS,OESD,WH,NS,AS)")
	f.StringSliceVarP(&f.raw.Pairings, "pairing", "r", nil, "pairing (U,P,T)")

	f.StringVar(&f.ConfigFile, "config", "", "YAML config file")
	f.String("data-dir", defaults["data_dir"].(string), "solver output directory")
	f.String("log-level", defaults["log_level"].(string), "log level (debug, info, warn, error)")
	f.String("format", defaults["format"].(string), "output format (table, yaml, json)")
	f.String("listen", defaults["listen"].(string), "listen address for serve")
	return f
}

// Raw returns the request codes collected from the parsed flags.
func (f *Flags) Raw() RawRequest {
	return f.raw
}

// Config loads the configuration with these flags on top.
func (f *Flags) Config() (*Config, error) {
	return Load(f.ConfigFile, f.FlagSet)
}
