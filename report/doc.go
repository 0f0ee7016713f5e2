// Package report formats a finished optimization run for either machine or
// human consumption (spec.md §6): a single semicolon-separated CSV row, or
// a free-form text summary mirroring the original tool's console output.
package report
