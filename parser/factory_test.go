package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/shadycss/ast"
	"bennypowers.dev/shadycss/parser"
	"bennypowers.dev/shadycss/token"
)

// streamFactory records the order nodes are produced in and materializes
// nothing, the streaming use the factory seam exists for.
type streamFactory struct {
	events []string
}

func (f *streamFactory) Stylesheet(rules []ast.Rule, rng token.Range) *ast.Stylesheet {
	f.events = append(f.events, "stylesheet")
	return nil
}

func (f *streamFactory) Comment(text string, rng token.Range) ast.Rule {
	f.events = append(f.events, "comment")
	return nil
}

func (f *streamFactory) AtRule(name, parameters string, rulelist *ast.Rulelist, nameRange, parametersRange, rng token.Range) ast.Rule {
	f.events = append(f.events, "atRule")
	return nil
}

func (f *streamFactory) Rulelist(rules []ast.Rule, rng token.Range) *ast.Rulelist {
	f.events = append(f.events, "rulelist")
	return nil
}

func (f *streamFactory) Ruleset(selector string, rulelist *ast.Rulelist, selectorRange, rng token.Range) ast.Rule {
	f.events = append(f.events, "ruleset")
	return nil
}

func (f *streamFactory) Declaration(name string, value ast.Rule, nameRange, rng token.Range) ast.Rule {
	f.events = append(f.events, "declaration")
	return nil
}

func (f *streamFactory) Expression(text string, rng token.Range) ast.Rule {
	f.events = append(f.events, "expression")
	return nil
}

func (f *streamFactory) Discarded(text string, rng token.Range) ast.Rule {
	f.events = append(f.events, "discarded")
	return nil
}

// TestStreamingFactory tests that a factory may decline to build any nodes:
// the parser still walks the whole input and calls the factory for each
// production in depth-first completion order, children before parents.
func TestStreamingFactory(t *testing.T) {
	factory := &streamFactory{}
	p := parser.New(parser.WithNodeFactory(factory))

	sheet := p.Parse("a: b; .x { c: d; }")

	assert.Nil(t, sheet, "the parser passes the factory's stylesheet through untouched")
	assert.Equal(t, []string{
		"expression", "declaration",
		"expression", "declaration", "rulelist", "ruleset",
		"stylesheet",
	}, factory.events)
}

// upperFactory rewrites declaration names before storing them, keeping the
// default behavior for everything else.
type upperFactory struct {
	parser.TreeFactory
}

func (f upperFactory) Declaration(name string, value ast.Rule, nameRange, rng token.Range) ast.Rule {
	return f.TreeFactory.Declaration(strings.ToUpper(name), value, nameRange, rng)
}

// TestRewritingFactory tests a factory that transforms node text while the
// parser's computed ranges still point at the original source.
func TestRewritingFactory(t *testing.T) {
	p := parser.New(parser.WithNodeFactory(upperFactory{}))

	sheet := p.Parse("color: red;")
	require.NotNil(t, sheet)
	require.Len(t, sheet.Rules, 1)

	decl, ok := sheet.Rules[0].(*ast.Declaration)
	require.True(t, ok)
	assert.Equal(t, "COLOR", decl.Name)
	assert.Equal(t, token.Range{Start: 0, End: 5}, decl.NameRange,
		"the name range still addresses the original text")
}
