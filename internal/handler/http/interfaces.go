package http

import "github.com/go-chi/chi/v5"

//go:generate mockgen -source=interfaces.go -destination=../../mock/route_group_mock.go -package=mock

// RouteGroup is a set of endpoints owned by another package. Routes declares
// them relative to the prefix the group is mounted under.
type RouteGroup interface {
	Routes(r chi.Router)
}
