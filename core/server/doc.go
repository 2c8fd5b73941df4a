// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package defines the
// listen port, the API key and the upload body limit.
package server
