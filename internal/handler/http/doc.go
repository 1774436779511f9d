// Package http implements the REST transport of the custody server.
//
// It wires the chi routes, request handlers and the middleware chain. Trace
// ids, access logging, gzip, optional bearer authentication and HMAC checks
// on mint bodies all run here before a request reaches the service layer.
package http
