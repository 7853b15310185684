// Package cli defines the Cobra command tree for the daykit CLI. Each file
// registers one top-level command (create, init, markdown, config, version)
// with the root command. Commands delegate to internal packages for the work
// and only handle flag parsing and output formatting.
package cli
