// Package testutils holds helpers shared by tests: a context carrying a test
// logger and helpers to lay out and read back file trees.
package testutils
