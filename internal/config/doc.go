// Package config provides configuration loading, merging, and validation
// facilities for the catalog server and its command-line client.
//
// Server configuration is assembled from multiple sources. For every field
// the first source that provides a non-zero value wins:
//  1. Environment variables (a .env file is loaded into the environment first)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
