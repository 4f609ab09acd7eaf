// Package config provides configuration loading, merging, and validation
// facilities for the sync server and the synctl command.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// The main entry points are [GetStructuredConfig] for the server runtime and
// [GetCLIConfig] for synctl.
package config
