// Package token defines the token kinds, spans, and source ranges shared by
// the tokenizer, parser, and AST.
package token

import "strconv"

// Type classifies a token. It is a bitmask: base kinds own one bit each, and
// composite kinds additionally carry the category bits they belong to, so a
// single mask test answers capability questions like "can this token end a
// declaration".
type Type uint32

const (
	// None is the zero Type; no real token carries it
	None Type = 0
	// Whitespace is a run of spaces, tabs, newlines, carriage returns or form feeds
	Whitespace Type = 1 << 0
	// String is a quoted string, including its quotes and any escaped bytes
	String Type = 1 << 1
	// Comment is a /* ... */ comment, including its delimiters
	Comment Type = 1 << 2
	// Word is any other run of bytes up to the next whitespace or boundary
	Word Type = 1 << 3
	// Boundary is the category of tokens that can terminate a rule
	Boundary Type = 1 << 4
	// PropertyBoundary is the category of tokens that can terminate a declaration
	PropertyBoundary Type = 1 << 5
	// OpenParenthesis is a single (
	OpenParenthesis Type = 1<<6 | Boundary
	// CloseParenthesis is a single )
	CloseParenthesis Type = 1<<7 | Boundary
	// At is a single @
	At Type = 1<<8 | Boundary
	// OpenBrace is a single {
	OpenBrace Type = 1<<9 | Boundary
	// CloseBrace is a single }; it also terminates declarations
	CloseBrace Type = 1<<10 | PropertyBoundary | Boundary
	// Semicolon is a single ;; it also terminates declarations
	Semicolon Type = 1<<11 | PropertyBoundary | Boundary
	// Colon is a single :. It carries the Word bit so that selectors which
	// begin with a colon (:host, :root) enter the declaration-or-ruleset
	// path rather than being discarded.
	Colon Type = 1<<12 | Boundary | Word
)

// Is reports whether t has every bit of u set. This is a capability check,
// not an equality check: Semicolon.Is(PropertyBoundary) is true.
func (t Type) Is(u Type) bool {
	return t&u == u
}

// String returns a readable name for the type, for logs and test output.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Whitespace:
		return "whitespace"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Word:
		return "word"
	case Boundary:
		return "boundary"
	case PropertyBoundary:
		return "propertyBoundary"
	case OpenParenthesis:
		return "openParenthesis"
	case CloseParenthesis:
		return "closeParenthesis"
	case At:
		return "at"
	case OpenBrace:
		return "openBrace"
	case CloseBrace:
		return "closeBrace"
	case Semicolon:
		return "semicolon"
	case Colon:
		return "colon"
	}
	return "type(" + strconv.FormatUint(uint64(t), 2) + ")"
}

// Token is a single classified span of source text. Start and End are byte
// offsets into the text the token was scanned from; Index is the token's
// position in the stream that produced it. Tokens are immutable values:
// neighbor lookup goes through the tokenizer's Before and After using Index.
type Token struct {
	Type  Type
	Start int
	End   int
	Index int
}

// Is reports whether the token's type has every bit of u set.
func (t Token) Is(u Type) bool {
	return t.Type.Is(u)
}

// Range returns the span of source text the token covers.
func (t Token) Range() Range {
	return Range{Start: t.Start, End: t.End}
}

// Range is a half-open [Start, End) span of byte offsets into source text.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool {
	return r.Start >= r.End
}
