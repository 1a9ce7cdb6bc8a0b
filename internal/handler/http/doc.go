// Package http implements the HTTP transport layer of the notes service.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API: the authenticated dashboard surface and the unauthenticated bot
// surface. Cross-cutting concerns such as bearer-token authentication, the
// bot shared-secret check, request tracing, access logging, and response
// compression are handled in this package before requests are delegated to
// the service layer.
package http
