package router

import (
	"github.com/pkg/errors"
)

// NavigationState is the result of one navigation event. It is replaced, never
// updated, on the next navigation.
type NavigationState struct {
	Path           string            `json:"path"`
	RedirectedFrom string            `json:"redirectedFrom,omitempty"`
	Params         map[string]string `json:"params"`
	Entry          RouteEntry        `json:"-"`
}

func (s NavigationState) View() View {
	return s.Entry.View
}

// Param returns the bound value of a path parameter, or "" if unbound.
func (s NavigationState) Param(name string) string {
	return s.Params[name]
}

// Renderer receives the state produced by a successful navigation.
type Renderer interface {
	Render(state NavigationState) error
}

type RendererFunc func(state NavigationState) error

func (f RendererFunc) Render(state NavigationState) error {
	return f(state)
}

// Registry dispatches a navigation state to the renderer of its view.
type Registry map[View]Renderer

func (r Registry) Render(state NavigationState) error {
	renderer, ok := r[state.View()]
	if !ok || renderer == nil {
		return errors.Errorf("no renderer for view %s", state.View())
	}
	return renderer.Render(state)
}

// Navigator tracks the current navigation state of one panel instance and
// hands every new state to its renderer. A Navigator is not safe for
// concurrent use; navigation events are expected one at a time.
type Navigator struct {
	table    *Table
	renderer Renderer
	current  *NavigationState
}

func NewNavigator(table *Table, renderer Renderer) *Navigator {
	return &Navigator{
		table:    table,
		renderer: renderer,
	}
}

// Navigate resolves path and renders the result. On failure the previous
// state stays current.
func (n *Navigator) Navigate(path string) (*NavigationState, error) {
	state, err := n.table.Navigate(path)
	if err != nil {
		return nil, err
	}
	if n.renderer != nil {
		if err := n.renderer.Render(*state); err != nil {
			return nil, errors.Wrapf(err, "render %s", state.Path)
		}
	}
	n.current = state
	return state, nil
}

// Current returns the state of the last successful navigation, or nil.
func (n *Navigator) Current() *NavigationState {
	return n.current
}
