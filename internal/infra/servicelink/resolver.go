// Package servicelink maps a free-text service name to the page where that
// subscription can be cancelled.
package servicelink

import "strings"

type Resolver struct {
	links []Link
}

func NewResolver(links []Link) *Resolver {
	normalized := make([]Link, len(links))
	for i, l := range links {
		aliases := make([]string, len(l.Aliases))
		for j, a := range l.Aliases {
			aliases[j] = strings.ToLower(a)
		}
		normalized[i] = Link{Service: strings.ToLower(l.Service), URL: l.URL, Aliases: aliases}
	}
	return &Resolver{links: normalized}
}

func NewDefaultResolver() *Resolver {
	return NewResolver(DefaultCatalogue)
}

// Resolve tries an exact, case-insensitive match on names and aliases first,
// then substring containment in either direction.
func (r *Resolver) Resolve(serviceName string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(serviceName))
	if needle == "" {
		return "", false
	}

	for _, l := range r.links {
		if l.Service == needle {
			return l.URL, true
		}
		for _, a := range l.Aliases {
			if a == needle {
				return l.URL, true
			}
		}
	}

	for _, l := range r.links {
		if overlaps(needle, l.Service) {
			return l.URL, true
		}
		for _, a := range l.Aliases {
			if overlaps(needle, a) {
				return l.URL, true
			}
		}
	}
	return "", false
}

func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
