// Package hostext is the host extension registry: the points where a
// feature hooks itself into the forum shell (top menu entries and topic
// list filters). Features register explicitly at process start instead of
// mutating globals.
package hostext

type Registry struct {
	topMenuItems          []string
	anonymousTopMenuItems []string
	filters               []string
	anonymousFilters      []string
}

func NewRegistry() *Registry {
	return &Registry{
		topMenuItems:          []string{"latest", "new", "unread"},
		anonymousTopMenuItems: []string{"latest"},
		filters:               []string{"latest", "new", "unread"},
		anonymousFilters:      []string{"latest"},
	}
}

func (r *Registry) AddTopMenuItem(name string) {
	r.topMenuItems = appendUnique(r.topMenuItems, name)
}

func (r *Registry) AddAnonymousTopMenuItem(name string) {
	r.anonymousTopMenuItems = appendUnique(r.anonymousTopMenuItems, name)
}

func (r *Registry) AddFilter(name string) {
	r.filters = appendUnique(r.filters, name)
}

func (r *Registry) AddAnonymousFilter(name string) {
	r.anonymousFilters = appendUnique(r.anonymousFilters, name)
}

func (r *Registry) TopMenuItems() []string          { return r.topMenuItems }
func (r *Registry) AnonymousTopMenuItems() []string { return r.anonymousTopMenuItems }
func (r *Registry) Filters() []string               { return r.filters }
func (r *Registry) AnonymousFilters() []string      { return r.anonymousFilters }

// HasFilter reports whether a topic list filter is registered.
func (r *Registry) HasFilter(name string) bool {
	for _, f := range r.filters {
		if f == name {
			return true
		}
	}
	return false
}

func appendUnique(list []string, name string) []string {
	for _, v := range list {
		if v == name {
			return list
		}
	}
	return append(list, name)
}
