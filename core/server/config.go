package server

import "net"

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"5001"`
	// Root is the directory files are served from when Source is local.
	Root string `mapstructure:"root" default:"."`
	// Index is the root document, relative to Root.
	Index string `mapstructure:"index" default:"index.html"`
	// Browse enables directory listings for directories without an index.
	Browse bool `mapstructure:"browse" default:"true"`
	// Source selects where files are read from (local, s3).
	Source string `mapstructure:"source" default:"local"`
}

const (
	SourceLocal = "local"
	SourceS3    = "s3"
)

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceLocal, SourceS3:
		return true
	default:
		return false
	}
}
