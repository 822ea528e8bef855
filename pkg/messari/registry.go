package messari

import (
	"fmt"
	"regexp"
	"slices"
)

// Endpoint describes how to build and validate a request for one Messari
// API operation. Endpoints are immutable values; they are created at
// registry construction and never modified afterwards.
type Endpoint struct {
	// Key uniquely identifies the endpoint, dotted resource.action
	// convention (e.g. "assets.list").
	Key string
	// Method is the HTTP method (GET, POST, PUT, DELETE).
	Method string
	// Path is the URL path template. Placeholders use the {name} form.
	Path string
	// PathParams names, in order of appearance, the placeholders in Path.
	PathParams []string
	// QueryParams is the allow-list of query parameters accepted by this
	// endpoint. Parameters outside the list are silently dropped. An
	// empty list means the endpoint takes no query parameters.
	QueryParams []string
	// Description documents the endpoint for humans. No runtime effect.
	Description string
}

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// placeholders returns the placeholder names in Path in order of appearance.
func (e Endpoint) placeholders() []string {
	matches := placeholderRe.FindAllStringSubmatch(e.Path, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// validate checks that the placeholders in Path exactly match PathParams,
// in both directions.
func (e Endpoint) validate() error {
	if e.Key == "" {
		return fmt.Errorf("endpoint has empty key")
	}
	switch e.Method {
	case "GET", "POST", "PUT", "DELETE":
	default:
		return fmt.Errorf("endpoint %q: unsupported method %q", e.Key, e.Method)
	}

	found := e.placeholders()
	for _, name := range found {
		if !slices.Contains(e.PathParams, name) {
			return fmt.Errorf("endpoint %q: placeholder {%s} not declared in path params", e.Key, name)
		}
	}
	for _, name := range e.PathParams {
		if !slices.Contains(found, name) {
			return fmt.Errorf("endpoint %q: path param %q has no placeholder in %q", e.Key, name, e.Path)
		}
	}
	return nil
}

// allowsQuery reports whether name is on the endpoint's query allow-list.
func (e Endpoint) allowsQuery(name string) bool {
	return slices.Contains(e.QueryParams, name)
}

// Registry is an immutable lookup table of endpoint descriptors. It is
// built once and safe for concurrent use without locking.
type Registry struct {
	endpoints map[string]Endpoint
	keys      []string
}

// NewRegistry builds a registry from the given endpoints. It rejects
// duplicate keys and any endpoint whose path placeholders do not match its
// declared path params.
func NewRegistry(endpoints ...Endpoint) (*Registry, error) {
	r := &Registry{
		endpoints: make(map[string]Endpoint, len(endpoints)),
		keys:      make([]string, 0, len(endpoints)),
	}
	for _, ep := range endpoints {
		if err := ep.validate(); err != nil {
			return nil, err
		}
		if _, exists := r.endpoints[ep.Key]; exists {
			return nil, fmt.Errorf("duplicate endpoint key %q", ep.Key)
		}
		r.endpoints[ep.Key] = ep
		r.keys = append(r.keys, ep.Key)
	}
	return r, nil
}

// Get returns the endpoint registered under key. It returns an
// *UnknownEndpointError when the key is absent.
func (r *Registry) Get(key string) (Endpoint, error) {
	ep, ok := r.endpoints[key]
	if !ok {
		return Endpoint{}, &UnknownEndpointError{Key: key}
	}
	return ep, nil
}

// Describe is an alias of Get, named for introspection call sites.
func (r *Registry) Describe(key string) (Endpoint, error) {
	return r.Get(key)
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.endpoints[key]
	return ok
}

// Keys returns all registered keys in registration order. The returned
// slice is a copy; callers may modify it freely.
func (r *Registry) Keys() []string {
	return slices.Clone(r.keys)
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int {
	return len(r.keys)
}
