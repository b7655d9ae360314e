package server

import (
	"time"

	"github.com/umputun/eduflow/pkg/config"
)

// ConfigAdapter adapts config.Config to the ConfigProvider interface.
// A non-empty Listen overrides the configured address.
type ConfigAdapter struct {
	Config *config.Config
	Listen string
}

// GetServerConfig returns listen address and timeout
func (c ConfigAdapter) GetServerConfig() (listen string, timeout time.Duration) {
	listen = c.Config.Server.Listen
	if c.Listen != "" {
		listen = c.Listen
	}
	return listen, c.Config.Server.Timeout
}
