// Package shared holds request decoding, response writing and request
// context helpers used by the api package and its middleware.
package shared
