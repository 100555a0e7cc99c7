package manifest

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

const (
	delimBasic          = `"`
	delimLiteral        = `'`
	delimMultiBasic     = `"""`
	delimMultiLiteral   = `'''`
	maxExtraClosingQuot = 2
	byteOrderMark       = "\ufeff"
)

// span is a half-open byte range [start, end) of the source text.
type span struct {
	start int
	end   int
}

// scanner walks TOML text and records the byte span of every string value.
// It assumes the text was already validated, so it only needs to be precise
// about token boundaries.
type scanner struct {
	src   []byte
	pos   int
	nodes []*node
}

func (s *scanner) errorf(format string, args ...any) error {
	line := strings.Count(string(s.src[:min(s.pos, len(s.src))]), "\n") + 1
	return fmt.Errorf("%w: line %d: %s", entities.ErrParse, line, fmt.Sprintf(format, args...))
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) hasPrefix(prefix string) bool {
	return strings.HasPrefix(string(s.src[s.pos:]), prefix)
}

// scan parses the whole document into nodes.
func (s *scanner) scan() error {
	if s.hasPrefix(byteOrderMark) {
		s.pos += len(byteOrderMark)
	}

	var table []string
	inArrayTable := false

	for {
		s.skipBlank(true)
		if s.eof() {
			return nil
		}

		if s.peek() == '[' {
			array := s.hasPrefix("[[")
			path, err := s.scanHeader(array)
			if err != nil {
				return err
			}
			table, inArrayTable = path, array
			s.nodes = append(s.nodes, &node{path: path, header: true, inArrayTable: array})
		} else if err := s.scanKeyValue(table, inArrayTable); err != nil {
			return err
		}

		if err := s.skipLineEnd(); err != nil {
			return err
		}
	}
}

func (s *scanner) scanHeader(array bool) ([]string, error) {
	closing := "]"
	s.pos++
	if array {
		closing = "]]"
		s.pos++
	}
	path, err := s.scanKey()
	if err != nil {
		return nil, err
	}
	s.skipBlank(false)
	if !s.hasPrefix(closing) {
		return nil, s.errorf("expected %q to close table header", closing)
	}
	s.pos += len(closing)
	return path, nil
}

// scanKeyValue parses "key = value" and records it under prefix. Inline
// table members are recorded recursively with their full path.
func (s *scanner) scanKeyValue(prefix []string, inArrayTable bool) error {
	key, err := s.scanKey()
	if err != nil {
		return err
	}
	s.skipBlank(false)
	if s.peek() != '=' {
		return s.errorf("expected '=' after key %q", strings.Join(key, "."))
	}
	s.pos++
	s.skipBlank(false)

	path := joinPath(prefix, key)
	n := &node{path: path, inArrayTable: inArrayTable}
	s.nodes = append(s.nodes, n)

	val, err := s.scanValue(path, inArrayTable)
	if err != nil {
		return err
	}
	n.value = val
	return nil
}

func (s *scanner) scanKey() ([]string, error) {
	var parts []string
	for {
		s.skipBlank(false)
		part, err := s.scanKeyPart()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		s.skipBlank(false)
		if s.peek() != '.' {
			return parts, nil
		}
		s.pos++
	}
}

func (s *scanner) scanKeyPart() (string, error) {
	switch s.peek() {
	case '"':
		tok, err := s.scanString()
		if err != nil {
			return "", err
		}
		return tok.value, nil
	case '\'':
		tok, err := s.scanString()
		if err != nil {
			return "", err
		}
		return tok.value, nil
	}

	start := s.pos
	for !s.eof() && isBareKeyChar(s.peek()) {
		s.pos++
	}
	if start == s.pos {
		return "", s.errorf("expected a key")
	}
	return string(s.src[start:s.pos]), nil
}

func (s *scanner) scanValue(path []string, inArrayTable bool) (*value, error) {
	start := s.pos
	switch s.peek() {
	case '"', '\'':
		tok, err := s.scanString()
		if err != nil {
			return nil, err
		}
		return &value{kind: kindString, span: tok.span, str: tok}, nil
	case '{':
		if err := s.scanInlineTable(path, inArrayTable); err != nil {
			return nil, err
		}
		return &value{kind: kindInlineTable, span: span{start, s.pos}}, nil
	case '[':
		if err := s.scanArray(); err != nil {
			return nil, err
		}
		return &value{kind: kindOther, span: span{start, s.pos}}, nil
	}

	for !s.eof() && !strings.ContainsRune(",]}#\r\n", rune(s.peek())) {
		s.pos++
	}
	end := s.pos
	for end > start && (s.src[end-1] == ' ' || s.src[end-1] == '\t') {
		end--
	}
	if end == start {
		return nil, s.errorf("expected a value")
	}
	return &value{kind: kindOther, span: span{start, end}}, nil
}

func (s *scanner) scanInlineTable(path []string, inArrayTable bool) error {
	s.pos++ // {
	for {
		s.skipBlank(true)
		if s.peek() == '}' {
			s.pos++
			return nil
		}
		if s.eof() {
			return s.errorf("unterminated inline table")
		}
		if err := s.scanKeyValue(path, inArrayTable); err != nil {
			return err
		}
		s.skipBlank(true)
		if s.peek() == ',' {
			s.pos++
		}
	}
}

// scanArray skips an array value; elements are not addressable.
func (s *scanner) scanArray() error {
	s.pos++ // [
	for {
		s.skipBlank(true)
		if s.peek() == ']' {
			s.pos++
			return nil
		}
		if s.eof() {
			return s.errorf("unterminated array")
		}
		if _, err := s.scanValue(nil, true); err != nil {
			return err
		}
		s.skipBlank(true)
		if s.peek() == ',' {
			s.pos++
		}
	}
}

// scanString reads any of the four TOML string forms.
func (s *scanner) scanString() (*stringToken, error) {
	start := s.pos
	delim := delimBasic
	switch {
	case s.hasPrefix(delimMultiBasic):
		delim = delimMultiBasic
	case s.hasPrefix(delimMultiLiteral):
		delim = delimMultiLiteral
	case s.peek() == '\'':
		delim = delimLiteral
	}
	s.pos += len(delim)
	contentStart := s.pos

	escapes := delim == delimBasic || delim == delimMultiBasic
	for {
		if s.eof() || (len(delim) == 1 && (s.peek() == '\n' || s.peek() == '\r')) {
			return nil, s.errorf("unterminated string")
		}
		if escapes && s.peek() == '\\' {
			s.pos += 2
			continue
		}
		if s.hasPrefix(delim) {
			break
		}
		s.pos++
	}

	// A multi-line string may end with up to two quotes right before its delimiter.
	if len(delim) == len(delimMultiBasic) {
		for extra := 0; extra < maxExtraClosingQuot && s.pos+len(delim) < len(s.src) &&
			s.src[s.pos+len(delim)] == delim[0]; extra++ {
			s.pos++
		}
	}

	raw := string(s.src[contentStart:s.pos])
	s.pos += len(delim)

	decoded, err := decodeString(raw, delim)
	if err != nil {
		return nil, s.errorf("%v", err)
	}
	return &stringToken{span: span{start, s.pos}, delim: delim, value: decoded}, nil
}

// skipBlank skips spaces, tabs and comments, and newlines when multiline is set.
func (s *scanner) skipBlank(multiline bool) {
	for !s.eof() {
		switch c := s.peek(); {
		case c == ' ' || c == '\t':
			s.pos++
		case multiline && (c == '\n' || c == '\r'):
			s.pos++
		case multiline && c == '#':
			s.skipComment()
		default:
			return
		}
	}
}

func (s *scanner) skipComment() {
	for !s.eof() && s.peek() != '\n' {
		s.pos++
	}
}

// skipLineEnd consumes trailing whitespace, an optional comment and the newline.
func (s *scanner) skipLineEnd() error {
	s.skipBlank(false)
	if s.peek() == '#' {
		s.skipComment()
	}
	if s.hasPrefix("\r\n") {
		s.pos += 2
		return nil
	}
	if s.eof() || s.peek() == '\n' {
		if !s.eof() {
			s.pos++
		}
		return nil
	}
	return s.errorf("unexpected content %q after value", s.peek())
}

func isBareKeyChar(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// decodeString turns the raw content between delimiters into its value.
func decodeString(raw, delim string) (string, error) {
	multiline := len(delim) == len(delimMultiBasic)
	if multiline {
		raw = strings.TrimPrefix(strings.TrimPrefix(raw, "\r\n"), "\n")
	}
	if delim == delimLiteral || delim == delimMultiLiteral {
		return raw, nil
	}

	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(raw) {
			return "", fmt.Errorf("dangling escape in %q", raw)
		}
		switch raw[i] {
		case 'b':
			sb.WriteByte('\b')
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		case 'f':
			sb.WriteByte('\f')
		case 'r':
			sb.WriteByte('\r')
		case 'e':
			sb.WriteByte('\x1b')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case 'u', 'U':
			width := 4
			if raw[i] == 'U' {
				width = 8
			}
			if i+width >= len(raw) {
				return "", fmt.Errorf("short unicode escape in %q", raw)
			}
			code, err := strconv.ParseUint(raw[i+1:i+1+width], 16, 32)
			if err != nil || !utf8.ValidRune(rune(code)) {
				return "", fmt.Errorf("invalid unicode escape in %q", raw)
			}
			sb.WriteRune(rune(code))
			i += width
		default:
			if !multiline {
				return "", fmt.Errorf("invalid escape %q", raw[i-1:i+1])
			}
			// Line-ending backslash: drop the newline and following whitespace.
			j := i
			for j < len(raw) && (raw[j] == ' ' || raw[j] == '\t' || raw[j] == '\n' || raw[j] == '\r') {
				j++
			}
			i = j - 1
		}
	}
	return sb.String(), nil
}

// encodeString renders a value between the given delimiters. Literal
// strings that cannot hold the value fall back to a basic string.
func encodeString(val, delim string) string {
	switch delim {
	case delimLiteral:
		if !strings.ContainsAny(val, "'\r\n") {
			return delim + val + delim
		}
	case delimMultiLiteral:
		if !strings.Contains(val, "'''") {
			return delim + val + delim
		}
	case delimMultiBasic:
		return delim + escapeBasic(val) + delim
	}
	return delimBasic + escapeBasic(val) + delimBasic
}

func escapeBasic(val string) string {
	var sb strings.Builder
	for _, r := range val {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04X`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func joinPath(prefix, key []string) []string {
	path := make([]string, 0, len(prefix)+len(key))
	path = append(path, prefix...)
	return append(path, key...)
}
