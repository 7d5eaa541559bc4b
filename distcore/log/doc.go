// Package log defines the structured logging interface and typed logging
// fields used by distcore packages.
//
// Adapters (such as the zap package) implement Logger so the library keeps
// logging calls consistent across backends.
package log
