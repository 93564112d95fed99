// Package app assembles the web service: configuration, structured
// logging, OpenTelemetry providers, the conversion service, and the
// chi router with its middleware chain, plus graceful lifecycle
// management around the embedded http.Server.
package app
