// Package sopfile parses the SOP instance file format (spec.md §6): a
// handful of "KEY: value" header lines followed by an EDGE_WEIGHT_SECTION
// holding an N×N matrix of edge weights, where -1 marks a precedence
// dependency and 1000000 is the "no edge" sentinel.
package sopfile
