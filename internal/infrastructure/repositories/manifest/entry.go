package manifest

type entryKind int

const (
	entryTable       entryKind = iota // [dependencies.foo] or foo.version = "..."
	entryBare                         // foo = "1.0"
	entryInline                       // foo = { version = "1.0" }
	entryUnversioned                  // foo = <anything else>
)

// entry is one dependency declaration, whatever shape it is written in.
type entry struct {
	name    string
	kind    entryKind
	version *stringToken
}

// absorb folds a node located below [section, name] into the entry.
func (e *entry) absorb(n *node) {
	switch {
	case len(n.path) == 2 && !n.header:
		e.kind = kindOf(n.value)
		if e.kind == entryBare {
			e.version = n.value.str
		}
	case len(n.path) == 3 && !n.header && n.path[2] == versionKey:
		if n.value != nil && n.value.kind == kindString {
			e.version = n.value.str
		}
	}
}

// versionNode returns the single rewritable version string of the entry.
func (e *entry) versionNode() (*stringToken, bool) {
	if e.kind == entryUnversioned || e.version == nil {
		return nil, false
	}
	return e.version, true
}

func kindOf(v *value) entryKind {
	if v == nil {
		return entryUnversioned
	}
	switch v.kind {
	case kindString:
		return entryBare
	case kindInlineTable:
		return entryInline
	default:
		return entryUnversioned
	}
}
