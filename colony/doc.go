// Package colony defines Engine, the contract every colony back-end
// implements (spec.md §4.1), and the error taxonomy shared across them
// (spec.md §7). Concrete engines live in the sibling colony/sequential and
// colony/workgroup packages; this package only holds what they have in
// common.
package colony
