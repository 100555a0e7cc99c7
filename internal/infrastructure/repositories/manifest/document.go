package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

const versionKey = "version"

type valueKind int

const (
	kindString valueKind = iota
	kindInlineTable
	kindOther // numbers, booleans, dates and arrays
)

// stringToken is a string value together with its position in the source.
type stringToken struct {
	span     span
	delim    string
	value    string
	replaced bool
}

type value struct {
	kind valueKind
	span span
	str  *stringToken // set for kindString
}

// node is either a table header or a key/value pair. path is absolute:
// table path + dotted key, and inline table members carry the path of
// their parent key.
type node struct {
	path         []string
	header       bool
	inArrayTable bool
	value        *value
}

// Document is a TOML manifest kept as its original text plus the spans of
// every value. Edits replace string tokens in place; everything else is
// emitted untouched.
type Document struct {
	src   []byte
	nodes []*node
}

var _ repositories.ManifestDocument = (*Document)(nil)

// Parse validates data as TOML and builds an editable document from it.
func Parse(data []byte) (*Document, error) {
	var decoded map[string]any
	if err := toml.Unmarshal(bytes.TrimPrefix(data, []byte(byteOrderMark)), &decoded); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d, column %d: %w", entities.ErrParse, row, col, err)
		}
		return nil, fmt.Errorf("%w: %w", entities.ErrParse, err)
	}

	src := slices.Clone(data)
	sc := &scanner{src: src}
	if err := sc.scan(); err != nil {
		return nil, err
	}
	return &Document{src: src, nodes: sc.nodes}, nil
}

// Dependencies returns the versioned entries of every dependency section.
// Entries without a string version (path, git, workspace) are skipped.
func (d *Document) Dependencies() []entities.Dependency {
	var deps []entities.Dependency
	for _, section := range entities.AllSections() {
		for _, e := range d.entries(section) {
			tok, ok := e.versionNode()
			if !ok || tok.value == "" {
				continue
			}
			deps = append(deps, entities.Dependency{
				Name:        e.name,
				VersionSpec: tok.value,
				Section:     section,
			})
		}
	}
	return deps
}

// SetDependencyVersion replaces the version string of an entry, keeping its
// quoting style and every other byte of the document.
func (d *Document) SetDependencyVersion(name string, section entities.Section, spec string) error {
	if !d.hasSection(section) {
		return fmt.Errorf("%w: section [%s]", entities.ErrNotFound, section.Key())
	}

	e := d.entry(section, name)
	if e == nil {
		return fmt.Errorf("%w: dependency %q in [%s]", entities.ErrNotFound, name, section.Key())
	}

	tok, ok := e.versionNode()
	if !ok {
		return fmt.Errorf(
			"%w: dependency %q in [%s] has no version string",
			entities.ErrUnsupportedFormat, name, section.Key(),
		)
	}

	tok.value = spec
	tok.replaced = true
	return nil
}

// Bytes serializes the document, splicing in replaced string tokens.
func (d *Document) Bytes() []byte {
	var edits []*stringToken
	for _, n := range d.nodes {
		if n.value != nil && n.value.str != nil && n.value.str.replaced {
			edits = append(edits, n.value.str)
		}
	}
	if len(edits) == 0 {
		return slices.Clone(d.src)
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].span.start < edits[j].span.start })

	out := make([]byte, 0, len(d.src))
	last := 0
	for _, tok := range edits {
		out = append(out, d.src[last:tok.span.start]...)
		out = append(out, encodeString(tok.value, tok.delim)...)
		last = tok.span.end
	}
	return append(out, d.src[last:]...)
}

func (d *Document) hasSection(section entities.Section) bool {
	for _, n := range d.nodes {
		if !n.inArrayTable && len(n.path) > 0 && n.path[0] == section.Key() {
			return true
		}
	}
	return false
}

func (d *Document) entry(section entities.Section, name string) *entry {
	for _, e := range d.entries(section) {
		if e.name == name {
			return e
		}
	}
	return nil
}

// entries groups the nodes below a section by dependency name, in order of
// first appearance.
func (d *Document) entries(section entities.Section) []*entry {
	var ordered []*entry
	byName := make(map[string]*entry)

	for _, n := range d.nodes {
		if n.inArrayTable || len(n.path) < 2 || n.path[0] != section.Key() {
			continue
		}
		name := n.path[1]
		e, ok := byName[name]
		if !ok {
			e = &entry{name: name, kind: entryTable}
			byName[name] = e
			ordered = append(ordered, e)
		}
		e.absorb(n)
	}
	return ordered
}
