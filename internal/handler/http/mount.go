package http

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// MountRouteGroup makes every endpoint of group reachable under prefix.
// A single trailing slash is dropped, so "/auth/" mounts at "/auth".
func (h *Handler) MountRouteGroup(prefix string, group RouteGroup) error {
	if h.ready() {
		return ErrComposerReady
	}

	if isNilGroup(group) {
		return h.fail(fmt.Errorf("%w: prefix %q", ErrNilRouteGroup, prefix))
	}

	prefix, err := normalizePrefix(prefix)
	if err != nil {
		return h.fail(err)
	}

	for _, mounted := range h.groups {
		if mounted.prefix == prefix {
			return h.fail(fmt.Errorf("%w: %q", ErrDuplicatePrefix, prefix))
		}
		if topSegment(mounted.prefix) == topSegment(prefix) {
			return h.fail(fmt.Errorf("%w: %q and %q", ErrOverlappingPrefix, mounted.prefix, prefix))
		}
	}

	h.groups = append(h.groups, mountedGroup{prefix: prefix, group: group})
	h.logger.Info().Str("prefix", prefix).Msg("route group mounted")

	return nil
}

// isNilGroup also catches a nil pointer (or func, map...) stored in a
// non-nil interface, whose Routes would panic during Init.
func isNilGroup(group RouteGroup) bool {
	if group == nil {
		return true
	}

	v := reflect.ValueOf(group)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func normalizePrefix(prefix string) (string, error) {
	malformed := func(reason string) (string, error) {
		return "", fmt.Errorf("%w: %q %s", ErrMalformedPrefix, prefix, reason)
	}

	if !strings.HasPrefix(prefix, "/") {
		return malformed("must start with /")
	}

	trimmed := strings.TrimSuffix(prefix, "/")
	if trimmed == "" {
		return malformed("must name at least one segment")
	}

	if strings.ContainsAny(trimmed, "{}*") {
		return malformed("must not contain route pattern characters")
	}

	if strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
		return malformed("must not contain whitespace")
	}

	for _, segment := range strings.Split(trimmed[1:], "/") {
		if segment == "" {
			return malformed("must not contain empty segments")
		}
	}

	return trimmed, nil
}

// topSegment returns "auth" for "/auth/v1".
func topSegment(prefix string) string {
	segment, _, _ := strings.Cut(prefix[1:], "/")
	return segment
}
