// Package guard marks values that must only be built through their constructor.
//
// Commands and queries embed a ConstructorGuard and call Validate at the start of
// every handler, so a zero-value command never reaches the store.
package guard
