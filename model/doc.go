// Package model contains the shared definitions: the interface abstracting
// the underlying HTTP client and the logger interface used to emit
// diagnostic messages.
package model
