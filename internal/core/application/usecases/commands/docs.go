// Package commands contains the use cases that change state. Every command is
// built through a constructor that validates its input, and every handler
// checks the caller against the AccessGate before it opens a unit of work.
package commands
