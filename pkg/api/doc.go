// Package api provides the shared HTTP surface for the firewall
// access-domain engine: info/health/ready endpoints and the route and
// error-handling conventions used by the v1 API.
//
// Base path: /
//
// Path: /-/health, /-/info, /-/ready
//
//	Service liveness/info endpoints, documented via huma.
//
// Path: /v1/access/ingress/{ipaddress}, /v1/access/egress/{ipaddress}
//
//	Streaming endpoint domain lookups (see pkg/api/v1).
package api
