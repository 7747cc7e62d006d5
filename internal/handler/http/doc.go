// Package http implements the REST transport of the record store.
//
// It wires the chi router, the request handlers and the middleware chain.
// Tracing, access logging, compression, CORS, request signing and bearer
// authentication all run here before a request reaches the service layer.
package http
