package scaffold

import "embed"

// scaffoldFS holds the template sets. The all: prefix keeps files whose name
// starts with the _name_ placeholder.
//
//go:embed all:scaffolds
var scaffoldFS embed.FS
