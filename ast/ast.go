// Package ast defines the node types produced by parsing CSS text. Every
// node records the half-open byte range of source text it covers.
package ast

import "bennypowers.dev/shadycss/token"

// Rule is the interface implemented by every node. The unexported marker
// method seals the union: the set of node kinds is fixed, and consumers
// dispatch with a type switch.
type Rule interface {
	// Pos returns the byte offset where the node's source text begins.
	Pos() int
	// End returns the byte offset just past the node's source text.
	End() int

	rule()
}

// Stylesheet is the root node. Its range always spans the entire parsed
// text, even when every byte of it was discarded.
type Stylesheet struct {
	Rules []Rule
	Range token.Range
}

// Comment is a /* ... */ comment. Text includes the delimiters.
type Comment struct {
	Text  string
	Range token.Range
}

// AtRule is an at-rule such as @media or @import. Rulelist is nil for
// at-statements (@import "x.css";). Parameters is empty, with a collapsed
// ParametersRange, when the rule has none.
type AtRule struct {
	Name            string
	Parameters      string
	Rulelist        *Rulelist
	NameRange       token.Range
	ParametersRange token.Range
	Range           token.Range
}

// Rulelist is a brace-delimited list of rules. Its range covers the opening
// brace through the matching close brace, or to end of text when the block
// is unterminated.
type Rulelist struct {
	Rules []Rule
	Range token.Range
}

// Ruleset is a selector followed by a rulelist body.
type Ruleset struct {
	Selector      string
	Rulelist      *Rulelist
	SelectorRange token.Range
	Range         token.Range
}

// Declaration is a property name and its value. Value is an *Expression for
// ordinary declarations, a *Rulelist for the custom-property mixin form
// (--foo: { ... };), or nil when the declaration has no value. Name keeps
// the exact source text up to the colon, untrimmed.
type Declaration struct {
	Name      string
	Value     Rule
	NameRange token.Range
	Range     token.Range
}

// Expression is the raw text of a declaration value, trimmed of surrounding
// whitespace. No value grammar is applied.
type Expression struct {
	Text  string
	Range token.Range
}

// Discarded covers a span of source text the parser consumed while
// recovering from unparseable input. Text is the exact source slice, so a
// stylesheet's nodes lose nothing of the original text.
type Discarded struct {
	Text  string
	Range token.Range
}

func (n *Stylesheet) Pos() int  { return n.Range.Start }
func (n *Stylesheet) End() int  { return n.Range.End }
func (n *Comment) Pos() int     { return n.Range.Start }
func (n *Comment) End() int     { return n.Range.End }
func (n *AtRule) Pos() int      { return n.Range.Start }
func (n *AtRule) End() int      { return n.Range.End }
func (n *Rulelist) Pos() int    { return n.Range.Start }
func (n *Rulelist) End() int    { return n.Range.End }
func (n *Ruleset) Pos() int     { return n.Range.Start }
func (n *Ruleset) End() int     { return n.Range.End }
func (n *Declaration) Pos() int { return n.Range.Start }
func (n *Declaration) End() int { return n.Range.End }
func (n *Expression) Pos() int  { return n.Range.Start }
func (n *Expression) End() int  { return n.Range.End }
func (n *Discarded) Pos() int   { return n.Range.Start }
func (n *Discarded) End() int   { return n.Range.End }

func (*Stylesheet) rule()  {}
func (*Comment) rule()     {}
func (*AtRule) rule()      {}
func (*Rulelist) rule()    {}
func (*Ruleset) rule()     {}
func (*Declaration) rule() {}
func (*Expression) rule()  {}
func (*Discarded) rule()   {}
