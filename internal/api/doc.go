// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the JSON task API and the two HTML pages to
// the task service.
package api
