// Package eligibility builds the two representations of "which nodes an ant
// may still visit" described in spec.md §3/§4.3: a counter form used by the
// sequential colony engine, and a packed-bitmask form used by the work-group
// engine. Both are derived once per Problem. The counter form is cloned per
// ant per round; the bitmask is shared read-only, and each ant keeps its own
// AntMask of visited nodes, reset every round.
package eligibility
