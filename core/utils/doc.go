// Package utils provides small text helpers shared by the catalog reader and the
// merge policy: lenient numeric parsing, blank checks and segment extraction.
package utils
