// Package config manages user-level settings stored at ~/.daykit/config.yaml.
// It loads, reads, writes, and validates keys such as the dune language
// version stamped into new days.
package config
