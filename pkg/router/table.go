package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidTable = errors.New("invalid route table")
	ErrNotFound     = errors.New("route not found")

	paramNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// RouteEntry maps a path pattern to either a view or a redirect target.
// A pattern may carry a single ":name" segment.
type RouteEntry struct {
	Path       string `json:"path" yaml:"path"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	View       View   `json:"view,omitempty" yaml:"view,omitempty"`
	RedirectTo string `json:"redirect,omitempty" yaml:"redirect,omitempty"`
}

func (e RouteEntry) IsRedirect() bool {
	return e.RedirectTo != ""
}

type Kind int

const (
	NotFound Kind = iota
	Matched
	Redirect
)

func (k Kind) String() string {
	switch k {
	case Matched:
		return "matched"
	case Redirect:
		return "redirect"
	default:
		return "not found"
	}
}

// Resolution is the outcome of a single Resolve call.
type Resolution struct {
	Kind   Kind
	Path   string
	Entry  RouteEntry
	Params map[string]string
	Target string
}

type compiledRoute struct {
	entry     RouteEntry
	segments  []string
	paramIdx  int
	paramName string
}

// Table is an immutable, ordered set of routes. It is safe for concurrent use.
type Table struct {
	routes          []compiledRoute
	literal         map[string]int
	linkActiveClass string
}

type Option func(*Table)

// WithLinkActiveClass sets the styling token the rendering layer applies to
// the active navigation link.
func WithLinkActiveClass(class string) Option {
	return func(t *Table) {
		t.linkActiveClass = class
	}
}

// NewTable validates entries and builds the table. All configuration
// problems are reported at once, wrapped in ErrInvalidTable.
func NewTable(entries []RouteEntry, opts ...Option) (*Table, error) {
	t := &Table{
		literal: make(map[string]int),
	}
	for _, opt := range opts {
		opt(t)
	}

	var problems []string
	patterns := make(map[string]string)

	for _, e := range entries {
		r, err := compile(e)
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}

		key := r.patternKey()
		if prev, ok := patterns[key]; ok {
			problems = append(problems, fmt.Sprintf("%s: duplicate of %s", e.Path, prev))
			continue
		}
		patterns[key] = e.Path

		if r.paramIdx < 0 {
			t.literal[e.Path] = len(t.routes)
		}
		t.routes = append(t.routes, r)
	}

	for _, r := range t.routes {
		if !r.entry.IsRedirect() {
			continue
		}
		if res := t.Resolve(r.entry.RedirectTo); res.Kind != Matched {
			problems = append(problems, fmt.Sprintf("%s: redirect target %s does not resolve to a view", r.entry.Path, r.entry.RedirectTo))
		}
	}

	if len(problems) > 0 {
		return nil, errors.Wrap(ErrInvalidTable, strings.Join(problems, "; "))
	}
	return t, nil
}

func compile(e RouteEntry) (compiledRoute, error) {
	r := compiledRoute{entry: e, paramIdx: -1}

	if !strings.HasPrefix(e.Path, "/") {
		return r, errors.Errorf("%q: path must start with /", e.Path)
	}
	if e.Path != "/" && strings.HasSuffix(e.Path, "/") {
		return r, errors.Errorf("%s: trailing slash", e.Path)
	}
	if strings.ContainsAny(e.Path, "?#") {
		return r, errors.Errorf("%s: query or fragment in path", e.Path)
	}

	hasView := e.View != NoView
	if hasView == e.IsRedirect() {
		return r, errors.Errorf("%s: exactly one of view and redirect must be set", e.Path)
	}
	if hasView && !e.View.Valid() {
		return r, errors.Errorf("%s: unknown view %d", e.Path, int(e.View))
	}

	r.segments = splitPath(e.Path)
	for i, seg := range r.segments {
		if seg == "" {
			return r, errors.Errorf("%s: empty segment", e.Path)
		}
		if !strings.HasPrefix(seg, ":") {
			if strings.ContainsAny(seg, "{}") {
				return r, errors.Errorf("%s: braces in segment %q", e.Path, seg)
			}
			continue
		}
		if r.paramIdx >= 0 {
			return r, errors.Errorf("%s: more than one parameter segment", e.Path)
		}
		if len(seg) == 1 {
			return r, errors.Errorf("%s: empty parameter name", e.Path)
		}
		if !paramNameRe.MatchString(seg[1:]) {
			return r, errors.Errorf("%s: invalid parameter name %q", e.Path, seg[1:])
		}
		r.paramIdx = i
		r.paramName = seg[1:]
	}
	return r, nil
}

// patternKey makes parameter segments compare by position only.
func (r compiledRoute) patternKey() string {
	if r.paramIdx < 0 {
		return r.entry.Path
	}
	segs := append([]string(nil), r.segments...)
	segs[r.paramIdx] = ":"
	return "/" + strings.Join(segs, "/")
}

func (r compiledRoute) match(segments []string) (string, bool) {
	if r.paramIdx < 0 || len(segments) != len(r.segments) {
		return "", false
	}
	for i, seg := range r.segments {
		if i == r.paramIdx {
			if segments[i] == "" {
				return "", false
			}
			continue
		}
		if seg != segments[i] {
			return "", false
		}
	}
	return segments[r.paramIdx], true
}

// Resolve looks path up in the table. Literal entries win over parameterized
// ones; parameterized entries are tried in table order. Resolve has no side
// effects.
func (t *Table) Resolve(path string) Resolution {
	path = normalizePath(path)
	res := Resolution{Kind: NotFound, Path: path}

	idx, ok := t.literal[path]
	params := map[string]string{}
	if !ok {
		segments := splitPath(path)
		for i, r := range t.routes {
			if value, matched := r.match(segments); matched {
				idx = i
				params[r.paramName] = value
				ok = true
				break
			}
		}
	}
	if !ok {
		return res
	}

	res.Entry = t.routes[idx].entry
	if res.Entry.IsRedirect() {
		res.Kind = Redirect
		res.Target = res.Entry.RedirectTo
		return res
	}
	res.Kind = Matched
	res.Params = params
	return res
}

// Navigate resolves path, following at most one redirect.
func (t *Table) Navigate(path string) (*NavigationState, error) {
	res := t.Resolve(path)

	var from string
	if res.Kind == Redirect {
		from = res.Path
		res = t.Resolve(res.Target)
	}
	if res.Kind != Matched {
		return nil, errors.Wrapf(ErrNotFound, "%s", normalizePath(path))
	}

	return &NavigationState{
		Path:           res.Path,
		RedirectedFrom: from,
		Params:         res.Params,
		Entry:          res.Entry,
	}, nil
}

func (t *Table) Entries() []RouteEntry {
	entries := make([]RouteEntry, len(t.routes))
	for i, r := range t.routes {
		entries[i] = r.entry
	}
	return entries
}

func (t *Table) LinkActiveClass() string {
	return t.linkActiveClass
}

// normalizePath drops query and fragment, makes the path absolute and
// removes a single trailing slash.
func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}

func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
