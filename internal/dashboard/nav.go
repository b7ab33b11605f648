package dashboard

// Region identifiers used as smooth-scroll targets
const (
	RegionDashboard = "dashboard-section"
	RegionCharts    = "charts-section"
	RegionAbout     = "about-section"
)

// DefaultScrollOffset keeps scroll targets clear of the fixed header
const DefaultScrollOffset = 70

// NavItem is one navigation link
type NavItem struct {
	Label    string
	Icon     string
	TargetID string
}

// RegionLocator finds the top of a page region in document coordinates
type RegionLocator interface {
	RegionTop(id string) (float64, bool)
}

// RegionTops is a RegionLocator backed by a fixed map
type RegionTops map[string]float64

// RegionTop implements RegionLocator
func (r RegionTops) RegionTop(id string) (float64, bool) {
	top, ok := r[id]
	return top, ok
}

// ScrollTarget is an animated scroll request
type ScrollTarget struct {
	Top      float64
	Behavior string
}

// NavBar is the fixed header with its slide-out panel. The open flag is
// owned by the bar and never shared.
type NavBar struct {
	Title        string
	Subtitle     string
	Operator     string
	Items        []NavItem
	ScrollOffset int
	open         bool
}

// NewNavBar creates the navigation bar; offset <= 0 uses DefaultScrollOffset
func NewNavBar(offset int) *NavBar {
	if offset <= 0 {
		offset = DefaultScrollOffset
	}
	return &NavBar{
		Title:    "IOT Project",
		Subtitle: "Fire & Smoke Detection Dashboard",
		Operator: "MU",
		Items: []NavItem{
			{Label: "Dashboard", Icon: "dashboard", TargetID: RegionDashboard},
			{Label: "Live Charts", Icon: "timeline", TargetID: RegionCharts},
			{Label: "About System", Icon: "info", TargetID: RegionAbout},
		},
		ScrollOffset: offset,
	}
}

// IsOpen reports whether the slide-out panel is open
func (n *NavBar) IsOpen() bool {
	return n.open
}

// Toggle opens or closes the panel. Tab and Shift key events are ignored
// so keyboard focus can move through the panel.
func (n *NavBar) Toggle(open bool, key string) {
	if key == "Tab" || key == "Shift" {
		return
	}
	n.open = open
}

// Item returns the navigation item with the given label
func (n *NavBar) Item(label string) (NavItem, bool) {
	for _, it := range n.Items {
		if it.Label == label {
			return it, true
		}
	}
	return NavItem{}, false
}

// Navigate computes the smooth-scroll target for a region and closes the
// panel. ok is false when the region cannot be located; the panel is closed
// either way.
func (n *NavBar) Navigate(targetID string, loc RegionLocator) (target ScrollTarget, ok bool) {
	defer func() { n.open = false }()

	top, found := loc.RegionTop(targetID)
	if !found {
		return ScrollTarget{}, false
	}
	return ScrollTarget{
		Top:      top - float64(n.ScrollOffset),
		Behavior: "smooth",
	}, true
}
