package desktopentry

import (
	"strings"

	"github.com/gopasspw/gopass/pkg/debug"
)

// Parse parses a desktop-entry file from the given bytes.
//
// The whole input must be consumed; any grammar violation fails the parse
// with a *ParseError carrying the offending byte offset and the
// unconsumed remainder. There is no partial recovery.
//
// The input is treated as ASCII text. Non-ASCII bytes inside values and
// comments are passed through unchanged.
func Parse(in []byte) (*Document, error) {
	p := &parser{in: in}

	items := make([]Item, 0, 16)
	for !p.eof() {
		if c, ok := p.comment(); ok {
			items = append(items, c)

			continue
		}

		g, ok := p.group()
		if !ok {
			return nil, p.err()
		}
		items = append(items, g)
	}

	debug.V(3).Log("parsed %d top-level items from %d bytes", len(items), len(in))

	return &Document{Items: items}, nil
}

// ParseString parses a desktop-entry file from a string. It is identical
// to Parse on the string's bytes.
func ParseString(s string) (*Document, error) {
	return Parse([]byte(s))
}

// parser is a plain cursor over the input. Alternatives are tried by
// attempting a sub-parse and restoring pos on failure. failAt records the
// deepest position any attempt reached so the final error points at the
// most specific offending byte rather than the start of the last
// backtracked token.
type parser struct {
	in     []byte
	pos    int
	errPos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.in)
}

func (p *parser) accept(c byte) bool {
	if p.pos < len(p.in) && p.in[p.pos] == c {
		p.pos++

		return true
	}

	return false
}

// acceptNewline consumes a line ending, "\n" or "\r\n". Both re-render
// as "\n".
func (p *parser) acceptNewline() bool {
	if p.accept('\n') {
		return true
	}
	if p.pos+1 < len(p.in) && p.in[p.pos] == '\r' && p.in[p.pos+1] == '\n' {
		p.pos += 2

		return true
	}

	return false
}

func (p *parser) failAt(pos int) {
	if pos > p.errPos {
		p.errPos = pos
	}
}

func (p *parser) err() error {
	pos := p.errPos
	if p.pos > pos {
		pos = p.pos
	}

	return &ParseError{Offset: pos, Remainder: string(p.in[pos:])}
}

// comment parses a blank run or a `#` line. Comments are tried before
// content at every position so whitespace-only runs become Blank comments
// instead of degenerate content lines.
func (p *parser) comment() (*Comment, bool) {
	start := p.pos
	for p.pos < len(p.in) && isBlank(p.in[p.pos]) {
		p.pos++
	}
	if p.pos > start {
		return &Comment{Kind: BlankComment, Text: string(p.in[start:p.pos])}, true
	}

	return p.textComment()
}

// isBlank matches the characters a Blank comment may consist of.
func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// textComment parses `# body`. Exactly one space after the `#` is
// stripped (the serializer re-adds it); further spaces are part of the
// body. The body runs to the next newline or EOF.
func (p *parser) textComment() (*Comment, bool) {
	if !p.accept('#') {
		return nil, false
	}
	p.accept(' ')

	start := p.pos
	for p.pos < len(p.in) && p.in[p.pos] != '\n' {
		p.pos++
	}
	text := string(p.in[start:p.pos])
	p.accept('\n')

	return &Comment{Kind: TextComment, Text: text}, true
}

// group parses `[Header]` followed by the group's entries. The header may
// contain any byte except brackets. A group ends where neither a comment
// nor a content entry can be parsed, typically at the next header or EOF.
func (p *parser) group() (*Group, bool) {
	if !p.accept('[') {
		p.failAt(p.pos)

		return nil, false
	}

	start := p.pos
	for p.pos < len(p.in) && p.in[p.pos] != '[' && p.in[p.pos] != ']' {
		p.pos++
	}
	header := string(p.in[start:p.pos])

	if !p.accept(']') {
		p.failAt(p.pos)

		return nil, false
	}
	p.acceptNewline()

	g := &Group{Header: header}
	for !p.eof() {
		if c, ok := p.comment(); ok {
			g.Entries = append(g.Entries, c)

			continue
		}

		kv, ok := p.keyValue()
		if !ok {
			break
		}
		g.Entries = append(g.Entries, kv)
	}

	return g, true
}

// keyValue parses `key[locale]=value;value;...`. On failure the cursor is
// restored so the caller can end the group and retry the same bytes as a
// new top-level item.
func (p *parser) keyValue() (*KeyValue, bool) {
	start := p.pos

	key := p.key()
	locale := p.localeBracket()

	p.spaces()
	if !p.accept('=') {
		p.failAt(p.pos)
		p.pos = start

		return nil, false
	}
	p.spaces()

	values, ok := p.valueList()
	if !ok {
		p.pos = start

		return nil, false
	}

	return &KeyValue{Key: key, Locale: locale, Values: values}, true
}

// key consumes a (possibly empty) run of ASCII alphanumerics and '-'.
func (p *parser) key() string {
	start := p.pos
	for p.pos < len(p.in) && isKeyChar(p.in[p.pos]) {
		p.pos++
	}

	return string(p.in[start:p.pos])
}

func isKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}

// localeBracket opportunistically parses `[locale]` after a key. If the
// bytes do not form a well-formed bracket pair the cursor is rolled back
// and the entry is treated as locale-less. Once the bracket parses the
// locale is committed, there is no second attempt without it.
func (p *parser) localeBracket() *Locale {
	start := p.pos
	if !p.accept('[') {
		return nil
	}

	s := p.pos
	for p.pos < len(p.in) && p.in[p.pos] != '[' && p.in[p.pos] != ']' {
		p.pos++
	}
	raw := string(p.in[s:p.pos])

	if !p.accept(']') {
		p.pos = start

		return nil
	}

	l := ParseLocale(raw)

	return &l
}

// spaces consumes horizontal whitespace around the '=' sign.
func (p *parser) spaces() {
	for p.pos < len(p.in) && (p.in[p.pos] == ' ' || p.in[p.pos] == '\t') {
		p.pos++
	}
}

// valueList parses semicolon-separated values up to an unescaped newline
// or EOF. `a;b;` and `a;b` both yield two values; `a;;b` yields an empty
// middle value.
func (p *parser) valueList() ([]string, bool) {
	var values []string
	for {
		if p.eof() {
			return values, true
		}
		if p.acceptNewline() {
			return values, true
		}

		v, ok := p.value()
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}
}

// value parses one value up to an unescaped ';' (consumed), newline (left
// for valueList) or EOF. Escape sequences are decoded; anything else
// after a backslash is a parse error. The decoded value is trimmed of
// surrounding whitespace before storage.
func (p *parser) value() (string, bool) {
	var b strings.Builder
	for p.pos < len(p.in) {
		c := p.in[p.pos]
		switch {
		case c == '\\':
			if p.pos+1 >= len(p.in) {
				p.failAt(p.pos)

				return "", false
			}
			dec, ok := decodeEscape(p.in[p.pos+1])
			if !ok {
				p.failAt(p.pos)

				return "", false
			}
			b.WriteByte(dec)
			p.pos += 2
		case c == ';':
			p.pos++

			return strings.TrimSpace(b.String()), true
		case c == '\n':
			return strings.TrimSpace(b.String()), true
		case c == '\r' && p.pos+1 < len(p.in) && p.in[p.pos+1] == '\n':
			return strings.TrimSpace(b.String()), true
		default:
			b.WriteByte(c)
			p.pos++
		}
	}

	return strings.TrimSpace(b.String()), true
}

// decodeEscape maps the second byte of a two-byte escape sequence to its
// decoded byte.
func decodeEscape(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 's':
		return ' ', true
	case 't':
		return '\t', true
	case '\\':
		return '\\', true
	case ';':
		return ';', true
	default:
		return 0, false
	}
}
