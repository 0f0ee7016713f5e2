// Package orchestrator drives a colony.Engine through its prepare/optimize
// lifecycle for a fixed round budget (spec.md §4's "Orchestrator"
// component), recording prepare/execution timings via a profiler.Profiler.
package orchestrator
