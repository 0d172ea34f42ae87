// Package poll provides bounded readiness waits over raw descriptors: block
// until the descriptor can be read or written without blocking, or until the
// bound elapses. An interrupted wait is resumed with the remaining time, so a
// signal cannot extend the bound.
package poll
