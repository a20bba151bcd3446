// Package service implements the task use cases on top of the store layer.
// Every operation runs on its own scoped connection obtained from a
// ConnectionProvider and released before the call returns.
package service
