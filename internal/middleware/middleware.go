// Package middleware stores the global middleware of the API.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request-scoped logging, New Relic tracing, CORS, panic
// recovery and the translation of errors into responses.
package middleware
