package api

import (
	"fmt"
	"strings"
)

// templateSlots is the number of %s verbs a Template must hold:
// version, blockchain, network and the element specific part, in that order.
const templateSlots = 4

// Template is a request path pattern such as "/%s/bc/%s/%s/address%s".
type Template struct {
	pattern string
}

// NewTemplate checks that pattern holds exactly four %s slots and no other verbs.
func NewTemplate(pattern string) (Template, error) {
	if !strings.HasPrefix(pattern, "/") {
		return Template{}, newError(KindTemplate, fmt.Sprintf("template %q must start with '/'", pattern))
	}
	if n := strings.Count(pattern, "%"); n != templateSlots || strings.Count(pattern, "%s") != templateSlots {
		return Template{}, newError(KindTemplate,
			fmt.Sprintf("template %q must contain exactly %d %%s slots", pattern, templateSlots))
	}
	return Template{pattern: pattern}, nil
}

// MustTemplate is NewTemplate for package level templates; it panics on a bad pattern.
func MustTemplate(pattern string) Template {
	t, err := NewTemplate(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Template) String() string {
	return t.pattern
}

// BuildPath fills the template slots from cfg and element, then appends tail as is
// and query last. It never touches the network.
func BuildPath(t Template, cfg EndpointConfig, element, tail, query string) (string, error) {
	if t.pattern == "" {
		return "", newError(KindTemplate, "empty template")
	}

	slots := []struct {
		name, value string
	}{
		{"version", cfg.Version()},
		{"blockchain", cfg.Blockchain().String()},
		{"network", cfg.Network()},
	}
	for _, s := range slots {
		if s.value == "" {
			return "", newError(KindTemplate, fmt.Sprintf("unresolved %s slot in template %q", s.name, t.pattern))
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(t.pattern, cfg.Version(), cfg.Blockchain(), cfg.Network(), element))
	b.WriteString(tail)
	b.WriteString(query)
	return b.String(), nil
}
