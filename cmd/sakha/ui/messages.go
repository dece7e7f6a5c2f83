package ui

import "krishisakha/internal/config"

// ConfigReloadMsg carries the result of a config file reload into a running
// program. Err is set, and Config nil, when the new file failed to load.
type ConfigReloadMsg struct {
	Config *config.Config
	Err    error
}
