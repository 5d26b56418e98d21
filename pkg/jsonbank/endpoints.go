package jsonbank

import "strings"

// Endpoints are the base URLs derived from a host.
type Endpoints struct {
	V1     string
	Public string
}

// MakeEndpoints derives the endpoints for host. The host is not validated.
func MakeEndpoints(host string) Endpoints {
	return Endpoints{
		V1:     host + "/v1",
		Public: host,
	}
}

// join appends path segments to a base URL.
func join(base string, segments ...string) string {
	return base + "/" + strings.Join(segments, "/")
}
