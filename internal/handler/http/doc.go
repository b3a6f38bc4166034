// Package http implements the HTTP transport layer of the gateway.
//
// It composes one chi router out of a cross-origin policy, named route groups
// mounted under URL prefixes and the root health endpoint. Cross-cutting
// concerns such as request tracing, access logging, request metrics and panic
// recovery are attached here before requests reach a route group.
package http
