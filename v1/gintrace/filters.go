package gintrace

// RouteMatcher selects routes by path and method. It is a tagged variant:
// match everything, match a fixed method-agnostic path set, or match by
// predicate. The zero value matches nothing.
//
// A matcher is resolved exactly once, when the plugin is constructed, into a
// single closure; per-request evaluation is a set lookup or predicate call.
type RouteMatcher struct {
	all   bool
	paths map[string]struct{}
	pred  func(path, method string) bool
}

// AllRoutes returns a matcher that matches every route.
func AllRoutes() RouteMatcher {
	return RouteMatcher{all: true}
}

// Routes returns a matcher for a fixed set of request paths, regardless of
// method.
func Routes(paths ...string) RouteMatcher {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return RouteMatcher{paths: set}
}

// RouteFunc returns a matcher backed by a predicate over (path, method).
// The predicate must be safe for concurrent use; it is called for every
// request.
func RouteFunc(fn func(path, method string) bool) RouteMatcher {
	return RouteMatcher{pred: fn}
}

// resolve collapses the variant into a single match closure. It returns nil
// for the zero matcher so callers can skip evaluation entirely.
func (m RouteMatcher) resolve() func(path, method string) bool {
	switch {
	case m.all:
		return func(string, string) bool { return true }
	case m.pred != nil:
		return m.pred
	case len(m.paths) > 0:
		paths := m.paths
		return func(path, _ string) bool {
			_, ok := paths[path]
			return ok
		}
	default:
		return nil
	}
}
