package markdown

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
	LinkKindHTML                LinkKind = "html"
)

type Link struct {
	Kind        LinkKind
	Destination string
}

// Internal reports whether the link points at another file of the same
// site: no scheme, not protocol-relative, not a bare fragment.
func (l Link) Internal() bool {
	d := l.Destination
	if d == "" || d[0] == '#' || d[0] == '/' || l.Kind == LinkKindAuto {
		return false
	}
	for i := 0; i < len(d); i++ {
		switch c := d[i]; {
		case c == ':':
			return false
		case c == '/' || c == '?' || c == '#':
			return true
		}
	}
	return true
}
