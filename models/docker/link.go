package docker

import "strings"

// ContainerLink is a legacy link to another container, optionally under an
// alias. Its textual form is "name" or "name:alias".
type ContainerLink struct {
	Name  string
	Alias string
}

// ParseContainerLink parses the "name" or "name:alias" form. Any other field
// count reports ok=false.
func ParseContainerLink(raw string) (ContainerLink, bool) {
	split := strings.Split(raw, ":")
	switch len(split) {
	case 1:
		return ContainerLink{Name: split[0]}, true
	case 2:
		return ContainerLink{Name: split[0], Alias: split[1]}, true
	default:
		return ContainerLink{}, false
	}
}

func (l ContainerLink) String() string {
	if l.Alias == "" {
		return l.Name
	}
	return l.Name + ":" + l.Alias
}
