package router

// DefaultLinkActiveClass is the UIkit class of the active navigation link.
const DefaultLinkActiveClass = "uk-active"

// PanelEntries returns the route table of the udpserial web panel.
func PanelEntries() []RouteEntry {
	return []RouteEntry{
		{Path: "/", RedirectTo: "/statistics"},
		{Path: "/statistics", Name: "Statistics", View: Statistics},
		{Path: "/configuration", Name: "Configuration", View: Configuration},
		{Path: "/configuration/add", Name: "Add port", View: AddPort},
		{Path: "/configuration/edit/:name", Name: "Edit port", View: EditPort},
		{Path: "/diagnostic", Name: "Diagnostic", View: Diagnostic},
	}
}

func NewPanelTable(opts ...Option) (*Table, error) {
	opts = append([]Option{WithLinkActiveClass(DefaultLinkActiveClass)}, opts...)
	return NewTable(PanelEntries(), opts...)
}
