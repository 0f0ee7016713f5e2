// Package registry lets colony engine implementations register themselves
// under a name, the way database/sql drivers register under a driver name.
// The original tool resolved a variant by name through a C++ template
// hierarchy fixed at compile time (spec.md §9 design note); colony packages
// register themselves from an init function instead, and the CLI looks
// variants up by the name the user passed on the command line.
package registry
