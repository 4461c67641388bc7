// Package http implements the HTTP transport layer of the employee registry.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// metrics, and response compression are handled in this package before
// requests are delegated to the service layer. Store failures are translated
// into HTTP statuses here and nowhere else.
package http
