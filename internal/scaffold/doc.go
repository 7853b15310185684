// Package scaffold writes the boilerplate of a new puzzle day from embedded
// templates. It powers the "daykit create" and "daykit init" commands: a day
// directory receives an empty <name>.opam, a dune-project, and a src/bin
// executable stub (dune + part1.ml).
package scaffold
