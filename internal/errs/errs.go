// Package errs defines the error type returned to API clients.
//
// Every failure the API reports has the same JSON shape,
//
//	{ "error": "<message>" }
//
// so clients can rely on a single field regardless of the cause.
package errs
