package router

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// View identifies a panel view. The router never looks inside a view, it only
// hands the identifier to a Renderer.
type View int

const (
	NoView View = iota
	Statistics
	Configuration
	AddPort
	EditPort
	Diagnostic
)

var viewNames = map[View]string{
	Statistics:    "Statistics",
	Configuration: "Configuration",
	AddPort:       "AddPort",
	EditPort:      "EditPort",
	Diagnostic:    "Diagnostic",
}

// Views lists every known view in declaration order.
func Views() []View {
	return []View{Statistics, Configuration, AddPort, EditPort, Diagnostic}
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return ""
}

func (v View) Valid() bool {
	_, ok := viewNames[v]
	return ok
}

// ParseView maps a view name back to its identifier, ignoring case.
func ParseView(name string) (View, error) {
	for v, n := range viewNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return v, nil
		}
	}
	return NoView, errors.Errorf("unknown view %q", name)
}

func (v View) MarshalJSON() ([]byte, error) {
	if !v.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(v.String())
}

func (v *View) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "view name")
	}
	parsed, err := ParseView(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v View) MarshalYAML() (interface{}, error) {
	if !v.Valid() {
		return nil, nil
	}
	return v.String(), nil
}

func (v *View) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return errors.Wrap(err, "view name")
	}
	parsed, err := ParseView(name)
	if err != nil {
		return errors.Wrapf(err, "line %d", node.Line)
	}
	*v = parsed
	return nil
}
