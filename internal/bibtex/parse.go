package bibtex

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// SyntaxError reports a malformed record in a BibTeX source.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// monthMacros are the month abbreviations every BibTeX style predefines.
var monthMacros = map[string]string{
	"jan": "January", "feb": "February", "mar": "March", "apr": "April",
	"may": "May", "jun": "June", "jul": "July", "aug": "August",
	"sep": "September", "oct": "October", "nov": "November", "dec": "December",
}

// ParseFile reads and parses the BibTeX file at path.
func ParseFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bibliography: %w", err)
	}
	defer file.Close()

	entries, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return entries, nil
}

// Parse reads every entry from r in source order.
//
// @string definitions are expanded in later values, @comment and @preamble
// blocks are skipped, and text outside records is ignored.
func Parse(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := &parser{src: data, line: 1, macros: make(map[string]string)}
	for k, v := range monthMacros {
		p.macros[k] = v
	}

	entries := []Entry{}
	for {
		if !p.skipTo('@') {
			return entries, nil
		}
		entry, ok, err := p.record()
		if err != nil {
			return nil, err
		}
		if ok {
			entries = append(entries, entry)
		}
	}
}

// parser walks the source byte by byte. All delimiters are ASCII, so
// multi-byte UTF-8 sequences pass through untouched.
type parser struct {
	src    []byte
	pos    int
	line   int
	macros map[string]string
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) next() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
	}
	return c
}

// skipTo advances past the next occurrence of c. Returns false at end of input.
func (p *parser) skipTo(c byte) bool {
	for !p.eof() {
		if p.next() == c {
			return true
		}
	}
	return false
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			p.next()
		default:
			return
		}
	}
}

// expect consumes c after optional whitespace.
func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.eof() {
		return p.errorf("unexpected end of input, expected %q", c)
	}
	if got := p.peek(); got != c {
		return p.errorf("expected %q, found %q", c, got)
	}
	p.next()
	return nil
}

// ident reads a type, field or macro name.
func (p *parser) ident() string {
	start := p.pos
	for !p.eof() {
		switch c := p.peek(); {
		case c == '=' || c == ',' || c == '#' || c == '"' ||
			c == '{' || c == '}' || c == '(' || c == ')' ||
			c == ' ' || c == '\t' || c == '\n' || c == '\r':
			return string(p.src[start:p.pos])
		default:
			p.next()
		}
	}
	return string(p.src[start:p.pos])
}

// record parses the text following an "@". ok is false for blocks that do
// not produce an entry (@string, @comment, @preamble) and for a stray "@"
// that is not followed by a type and an opening brace or parenthesis, such
// as an email address in a header comment.
func (p *parser) record() (entry Entry, ok bool, err error) {
	line := p.line
	entryType := strings.ToLower(p.ident())
	if entryType == "" {
		return Entry{}, false, nil
	}

	p.skipSpace()
	if p.eof() || (p.peek() != '{' && p.peek() != '(') {
		return Entry{}, false, nil
	}
	var closer byte = '}'
	if p.next() == '(' {
		closer = ')'
	}

	switch entryType {
	case "comment", "preamble":
		return Entry{}, false, p.skipBlock(closer)
	case "string":
		return Entry{}, false, p.stringDef(closer)
	}

	entry = Entry{Type: entryType, Fields: make(map[string]string), Line: line}
	entry.Key, err = p.key(closer)
	if err != nil {
		return Entry{}, false, err
	}
	if err := p.fields(&entry, closer); err != nil {
		return Entry{}, false, err
	}
	return entry, true, nil
}

// skipBlock consumes a balanced block whose opener has already been read.
func (p *parser) skipBlock(closer byte) error {
	opener := byte('{')
	if closer == ')' {
		opener = '('
	}
	depth := 1
	for !p.eof() {
		switch p.next() {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
	return p.errorf("unterminated block")
}

func (p *parser) stringDef(closer byte) error {
	p.skipSpace()
	name := strings.ToLower(p.ident())
	if name == "" {
		return p.errorf("@string without a name")
	}
	if err := p.expect('='); err != nil {
		return err
	}
	value, err := p.value()
	if err != nil {
		return err
	}
	p.macros[name] = value
	return p.expect(closer)
}

// key reads the citation key up to the first comma. A record closed right
// after its key has no fields; the closer is left for fields to consume.
func (p *parser) key(closer byte) (string, error) {
	p.skipSpace()
	start := p.pos
	for !p.eof() {
		switch c := p.peek(); {
		case c == ',':
			key := strings.TrimSpace(string(p.src[start:p.pos]))
			p.next()
			return key, nil
		case c == closer:
			return strings.TrimSpace(string(p.src[start:p.pos])), nil
		case c == '=' || c == '{' || c == '}':
			return "", p.errorf("malformed citation key")
		default:
			p.next()
		}
	}
	return "", p.errorf("unexpected end of input in citation key")
}

func (p *parser) fields(entry *Entry, closer byte) error {
	for {
		p.skipSpace()
		if p.eof() {
			return p.errorf("unterminated entry %q", entry.Key)
		}
		if p.peek() == closer {
			p.next()
			return nil
		}

		name := strings.ToLower(p.ident())
		if name == "" {
			return p.errorf("expected field name in entry %q, found %q", entry.Key, p.peek())
		}
		if err := p.expect('='); err != nil {
			return err
		}
		value, err := p.value()
		if err != nil {
			return err
		}
		entry.Fields[name] = value

		p.skipSpace()
		if p.eof() {
			return p.errorf("unterminated entry %q", entry.Key)
		}
		switch p.peek() {
		case ',':
			p.next()
		case closer:
			p.next()
			return nil
		default:
			return p.errorf("expected ',' or %q after field %q, found %q", closer, name, p.peek())
		}
	}
}

// value reads one field value, joining "#"-concatenated pieces.
func (p *parser) value() (string, error) {
	var b strings.Builder
	for {
		piece, err := p.piece()
		if err != nil {
			return "", err
		}
		b.WriteString(piece)

		p.skipSpace()
		if p.eof() || p.peek() != '#' {
			return b.String(), nil
		}
		p.next()
	}
}

func (p *parser) piece() (string, error) {
	p.skipSpace()
	if p.eof() {
		return "", p.errorf("unexpected end of input, expected a value")
	}

	switch c := p.peek(); {
	case c == '{':
		p.next()
		return p.braced()
	case c == '"':
		p.next()
		return p.quoted()
	case c >= '0' && c <= '9':
		start := p.pos
		for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
			p.next()
		}
		return string(p.src[start:p.pos]), nil
	default:
		name := p.ident()
		if name == "" {
			return "", p.errorf("expected a value, found %q", c)
		}
		if v, ok := p.macros[strings.ToLower(name)]; ok {
			return v, nil
		}
		return name, nil
	}
}

// braced reads up to the brace matching one already consumed.
func (p *parser) braced() (string, error) {
	start, line := p.pos, p.line
	depth := 1
	for !p.eof() {
		switch p.next() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return string(p.src[start : p.pos-1]), nil
			}
		}
	}
	return "", &SyntaxError{Line: line, Msg: "unbalanced braces in value"}
}

// quoted reads up to the closing quote; quotes inside braces do not count.
func (p *parser) quoted() (string, error) {
	start, line := p.pos, p.line
	depth := 0
	for !p.eof() {
		switch p.next() {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth == 0 {
				return string(p.src[start : p.pos-1]), nil
			}
		}
	}
	return "", &SyntaxError{Line: line, Msg: "unterminated quoted value"}
}
