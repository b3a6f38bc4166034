// Package upstream binds the gateway's route groups to the services that
// implement them. A bound group forwards every method and sub-path under its
// prefix to one base URL; an unbound group has no routes at all.
package upstream
