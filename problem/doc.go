// Package problem defines Problem, the immutable SOP instance shared
// read-only by every colony engine (spec.md §3): weighted directed graph of
// edge costs plus an acyclic precedence relation. Parsing from the SOP file
// format lives in the sibling sopfile package; this package owns the data
// model and its structural invariants.
package problem
