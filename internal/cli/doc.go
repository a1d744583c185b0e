// Package cli defines the Cobra command tree for the leetadd CLI. The root
// command scaffolds and publishes one problem; each other file registers one
// subcommand. Commands delegate to internal packages for business logic and
// only handle flag parsing, I/O formatting, and exit status.
package cli
