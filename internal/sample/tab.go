package sample

import "fmt"

// Tab is one of the four mutually exclusive shell panels, in tab-bar order.
type Tab int

const (
	TabDashboard Tab = iota
	TabAnalysis
	TabAlerts
	TabWeather
)

var tabKeys = [...]string{"dashboard", "analysis", "alerts", "weather"}

var tabTitles = [...]string{"Dashboard", "Analysis", "Alerts", "Weather"}

// Tabs returns every tab in tab-bar order.
func Tabs() []Tab {
	return []Tab{TabDashboard, TabAnalysis, TabAlerts, TabWeather}
}

// TabKeys returns the config keys of every tab in tab-bar order.
func TabKeys() []string {
	out := make([]string, len(tabKeys))
	copy(out, tabKeys[:])
	return out
}

// String returns the tab-bar title.
func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabTitles) {
		return "Unknown"
	}
	return tabTitles[t]
}

// Key returns the lowercase identifier used in config and on the command line.
func (t Tab) Key() string {
	if t < 0 || int(t) >= len(tabKeys) {
		return ""
	}
	return tabKeys[t]
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab { return Tab((int(t) + 1) % len(tabKeys)) }

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab { return Tab((int(t) + len(tabKeys) - 1) % len(tabKeys)) }

// ParseTab maps a config key to its Tab.
func ParseTab(s string) (Tab, error) {
	for i, k := range tabKeys {
		if k == s {
			return Tab(i), nil
		}
	}
	return TabDashboard, fmt.Errorf("unknown tab %q", s)
}
