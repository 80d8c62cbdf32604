// Package errs is the errors namespace shared by validators and checkers.
// Every failure is a *ValidationError wrapping one of the sentinels, so callers
// match with errors.Is and read Op/Value with errors.As.
package errs
