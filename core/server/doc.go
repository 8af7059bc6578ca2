// Package server holds the HTTP server configuration and constants.
//
// While the start command handles the server startup, this package defines
// the listen address, the serving root and root document, directory browsing,
// and the supported file sources (local directory, S3 bucket).
//
// # Usage
//
// This package is embedded by core/config and read by core/assets and the
// responder feature.
package server
