// Package handler is the first layer after the router.
//
// It binds path parameters and request bodies, calls the matching service
// and writes the JSON response. Failures are returned to the global error
// handler, which renders them.
package handler
