// Package domain defines the task entity, its defaults, the partial-update
// merge rule, and the validation errors shared by the other layers.
//
// It has no dependencies on storage or transport; the store and api
// packages translate to and from these types.
package domain
