package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/luca-patrignani/flopstats/calculation"
)

// YAML renders the Document form of a result as YAML.
type YAML struct{}

func (YAML) Render(w io.Writer, res calculation.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(res)); err != nil {
		return err
	}
	return enc.Close()
}

// JSON renders the Document form of a result as indented JSON.
type JSON struct{}

func (JSON) Render(w io.Writer, res calculation.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(res))
}
