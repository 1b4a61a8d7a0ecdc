// Package app defines common runtime contracts shared by different
// executable entrypoints built on the depletion coupling library.
//
// It provides minimal abstractions that allow cmd/* binaries to drive
// simulation components without depending on their concrete implementations.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
