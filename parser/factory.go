package parser

import (
	"bennypowers.dev/shadycss/ast"
	"bennypowers.dev/shadycss/token"
)

// NodeFactory builds the nodes the parser emits, one operation per node
// kind. The parser computes every string and range itself and passes them
// in; a factory only decides how, or whether, to materialize nodes. Custom
// factories may wrap nodes with extra state, rewrite text before storing
// it, accumulate statistics, or stream spans somewhere instead of building
// a tree. Return values flow into parent Rules slices but the parser never
// dereferences them, so a streaming factory may return nil throughout.
type NodeFactory interface {
	// Stylesheet builds the root node covering the whole input.
	Stylesheet(rules []ast.Rule, rng token.Range) *ast.Stylesheet
	// Comment builds a comment node; text includes the /* */ delimiters.
	Comment(text string, rng token.Range) ast.Rule
	// AtRule builds an at-rule; rulelist is nil for bare at-statements and
	// parameters is empty when the rule has none.
	AtRule(name, parameters string, rulelist *ast.Rulelist, nameRange, parametersRange, rng token.Range) ast.Rule
	// Rulelist builds a brace-delimited rule list.
	Rulelist(rules []ast.Rule, rng token.Range) *ast.Rulelist
	// Ruleset builds a selector and its body.
	Ruleset(selector string, rulelist *ast.Rulelist, selectorRange, rng token.Range) ast.Rule
	// Declaration builds a property declaration; value is an
	// *ast.Expression, an *ast.Rulelist (mixin form), or nil.
	Declaration(name string, value ast.Rule, nameRange, rng token.Range) ast.Rule
	// Expression builds a trimmed declaration value.
	Expression(text string, rng token.Range) ast.Rule
	// Discarded builds a recovery node covering unparseable text.
	Discarded(text string, rng token.Range) ast.Rule
}

// TreeFactory is the default NodeFactory. It materializes the plain ast
// node for every production.
type TreeFactory struct{}

func (TreeFactory) Stylesheet(rules []ast.Rule, rng token.Range) *ast.Stylesheet {
	return &ast.Stylesheet{Rules: rules, Range: rng}
}

func (TreeFactory) Comment(text string, rng token.Range) ast.Rule {
	return &ast.Comment{Text: text, Range: rng}
}

func (TreeFactory) AtRule(name, parameters string, rulelist *ast.Rulelist, nameRange, parametersRange, rng token.Range) ast.Rule {
	return &ast.AtRule{
		Name:            name,
		Parameters:      parameters,
		Rulelist:        rulelist,
		NameRange:       nameRange,
		ParametersRange: parametersRange,
		Range:           rng,
	}
}

func (TreeFactory) Rulelist(rules []ast.Rule, rng token.Range) *ast.Rulelist {
	return &ast.Rulelist{Rules: rules, Range: rng}
}

func (TreeFactory) Ruleset(selector string, rulelist *ast.Rulelist, selectorRange, rng token.Range) ast.Rule {
	return &ast.Ruleset{
		Selector:      selector,
		Rulelist:      rulelist,
		SelectorRange: selectorRange,
		Range:         rng,
	}
}

func (TreeFactory) Declaration(name string, value ast.Rule, nameRange, rng token.Range) ast.Rule {
	return &ast.Declaration{
		Name:      name,
		Value:     value,
		NameRange: nameRange,
		Range:     rng,
	}
}

func (TreeFactory) Expression(text string, rng token.Range) ast.Rule {
	return &ast.Expression{Text: text, Range: rng}
}

func (TreeFactory) Discarded(text string, rng token.Range) ast.Rule {
	return &ast.Discarded{Text: text, Range: rng}
}
