// Package config provides configuration loading, merging, and validation
// facilities for the record store, the terminal client and gumictl.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file, then environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// The main entry points are [GetStructuredConfig] for the server,
// [GetClientConfig] for the client and [GetEnvConfig] for gumictl.
package config
