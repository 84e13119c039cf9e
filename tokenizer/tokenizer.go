// Package tokenizer splits CSS text into a lazy stream of classified,
// position-stamped tokens.
package tokenizer

import (
	"github.com/tdewolff/parse/v2"

	"bennypowers.dev/shadycss/token"
)

// Tokenizer produces the token stream for one piece of CSS text. Tokens are
// scanned on demand and retained, so index-based navigation is O(1) for
// anything already produced and the whole input is never tokenized eagerly.
//
// The stream covers the input exactly: the first token starts at offset 0,
// each token ends where the next begins, and the final token ends at
// len(source).
type Tokenizer struct {
	src    string
	in     *parse.Input
	offset int
	tokens []token.Token
	cursor int
	done   bool
}

// New returns a Tokenizer over cssText, positioned at its first token.
func New(cssText string) *Tokenizer {
	return &Tokenizer{
		src: cssText,
		in:  parse.NewInputString(cssText),
	}
}

// Source returns the full text the tokenizer was built over.
func (t *Tokenizer) Source() string {
	return t.src
}

// Current returns the token at the cursor without consuming it.
// ok is false at end of input.
func (t *Tokenizer) Current() (token.Token, bool) {
	return t.at(t.cursor)
}

// Advance returns the token that was current and moves the cursor past it.
// ok is false when the cursor is already at end of input.
func (t *Tokenizer) Advance() (token.Token, bool) {
	tok, ok := t.at(t.cursor)
	if ok {
		t.cursor++
	}
	return tok, ok
}

// Before returns the token preceding tok in its stream.
// ok is false when tok is the first token.
func (t *Tokenizer) Before(tok token.Token) (token.Token, bool) {
	return t.at(tok.Index - 1)
}

// After returns the token following tok in its stream, scanning one more
// token if it has not been materialized yet. ok is false when tok is last.
func (t *Tokenizer) After(tok token.Token) (token.Token, bool) {
	return t.at(tok.Index + 1)
}

// Flush consumes and returns every token from the cursor to end of input.
func (t *Tokenizer) Flush() []token.Token {
	var out []token.Token
	for {
		tok, ok := t.Advance()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// Range returns the span from the start of from to the end of to.
func (t *Tokenizer) Range(from, to token.Token) token.Range {
	return token.Range{Start: from.Start, End: to.End}
}

// Slice returns the source text from the start of from to the end of to,
// inclusive of both tokens.
func (t *Tokenizer) Slice(from, to token.Token) string {
	return t.src[from.Start:to.End]
}

// SliceRange returns the source text covered by r.
func (t *Tokenizer) SliceRange(r token.Range) string {
	return t.src[r.Start:r.End]
}

// TrimRange narrows both ends of r past whitespace bytes. The result never
// inverts: an all-whitespace range collapses to an empty one.
func (t *Tokenizer) TrimRange(r token.Range) token.Range {
	for r.Start < r.End && isWhitespace(t.src[r.Start]) {
		r.Start++
	}
	for r.End > r.Start && isWhitespace(t.src[r.End-1]) {
		r.End--
	}
	return r
}

// at returns the token at stream index i, scanning forward as needed.
func (t *Tokenizer) at(i int) (token.Token, bool) {
	if i < 0 {
		return token.Token{}, false
	}
	for len(t.tokens) <= i && !t.done {
		t.scan()
	}
	if i >= len(t.tokens) {
		return token.Token{}, false
	}
	return t.tokens[i], true
}

// scan classifies one token at the input position and appends it to the
// stream. Every branch consumes at least one byte, so the scan always makes
// progress. A NUL byte is only end of input when the reader reports it;
// real NUL bytes in the text are ordinary word content.
func (t *Tokenizer) scan() {
	c := t.in.Peek(0)
	if c == 0 && t.in.Err() != nil {
		t.done = true
		return
	}

	var typ token.Type
	switch {
	case isWhitespace(c):
		typ = token.Whitespace
		t.in.Move(1)
		for isWhitespace(t.in.Peek(0)) {
			t.in.Move(1)
		}
	case c == '"' || c == '\'':
		typ = token.String
		t.scanString(c)
	case c == '/' && t.in.Peek(1) == '*':
		typ = token.Comment
		t.scanComment()
	case boundaryType(c) != token.None:
		typ = boundaryType(c)
		t.in.Move(1)
	default:
		typ = token.Word
		t.scanWord()
	}

	n := len(t.in.Shift())
	t.tokens = append(t.tokens, token.Token{
		Type:  typ,
		Start: t.offset,
		End:   t.offset + n,
		Index: len(t.tokens),
	})
	t.offset += n
}

// scanString consumes a quoted string through its closing quote. A backslash
// always consumes the byte after it. Unterminated strings run to end of
// input and still produce a String token.
func (t *Tokenizer) scanString(quote byte) {
	t.in.Move(1)
	for {
		c := t.in.Peek(0)
		if c == 0 && t.in.Err() != nil {
			return
		}
		if c == '\\' {
			t.in.Move(1)
			if next := t.in.Peek(0); next != 0 || t.in.Err() == nil {
				t.in.Move(1)
			}
			continue
		}
		t.in.Move(1)
		if c == quote {
			return
		}
	}
}

// scanComment consumes a /* ... */ comment. Unterminated comments run to
// end of input and still produce a Comment token.
func (t *Tokenizer) scanComment() {
	t.in.Move(2)
	for {
		c := t.in.Peek(0)
		if c == 0 && t.in.Err() != nil {
			return
		}
		if c == '*' && t.in.Peek(1) == '/' {
			t.in.Move(2)
			return
		}
		t.in.Move(1)
	}
}

// scanWord consumes bytes until the next whitespace, boundary byte, or end
// of input. Quote and comment openers do not stop a word in progress; only
// token-initial positions begin strings and comments.
func (t *Tokenizer) scanWord() {
	t.in.Move(1)
	for {
		c := t.in.Peek(0)
		if c == 0 && t.in.Err() != nil {
			return
		}
		if isWhitespace(c) || boundaryType(c) != token.None {
			return
		}
		t.in.Move(1)
	}
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func boundaryType(c byte) token.Type {
	switch c {
	case '{':
		return token.OpenBrace
	case '}':
		return token.CloseBrace
	case '(':
		return token.OpenParenthesis
	case ')':
		return token.CloseParenthesis
	case ';':
		return token.Semicolon
	case '@':
		return token.At
	case ':':
		return token.Colon
	}
	return token.None
}
