// Package profiler provides named wall-clock timers used to measure the
// advance/evaluate/update phases of a colony engine's optimize loop
// (spec.md §4.1, §9). Unlike the tool this is modeled on, the profiler is an
// owned value passed to whichever component needs it, not global mutable
// state (spec.md §9 design note).
package profiler
