package router

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RouteFile is the on-disk form of a route table.
type RouteFile struct {
	LinkActiveClass string       `yaml:"linkActiveClass,omitempty"`
	Routes          []RouteEntry `yaml:"routes"`
}

// LoadEntries decodes a YAML route file. The entries are not validated, pass
// them to NewTable for that.
func LoadEntries(r io.Reader) (*RouteFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rf RouteFile
	if err := dec.Decode(&rf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty route file")
		}
		return nil, errors.Wrap(err, "yaml.Decode")
	}
	return &rf, nil
}

// LoadTable reads a route file from disk and builds its table.
func LoadTable(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "os.Open")
	}
	defer f.Close()

	rf, err := LoadEntries(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}

	class := rf.LinkActiveClass
	if class == "" {
		class = DefaultLinkActiveClass
	}
	return NewTable(rf.Routes, WithLinkActiveClass(class))
}
