// Package parser builds range-tracked syntax trees from CSS text. Parsing
// is total: every input produces a stylesheet, and spans that cannot be
// parsed become Discarded nodes instead of errors. The parser finds
// structural boundaries only (braces, colons, semicolons, parentheses,
// at-keywords); selectors, at-rule parameters, and declaration values stay
// raw text, and the custom-property mixin form (--foo: { ... };) parses as
// a declaration whose value is a rule list.
package parser

import (
	"go.uber.org/zap"

	"bennypowers.dev/shadycss/ast"
	"bennypowers.dev/shadycss/token"
	"bennypowers.dev/shadycss/tokenizer"
)

// Parser parses CSS text into range-tracked syntax trees. Construct with
// New; a Parser is safe to reuse across inputs but not across goroutines
// within one Parse call (each call owns its token stream exclusively).
type Parser struct {
	factory NodeFactory
	log     *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithNodeFactory builds nodes through f instead of the default TreeFactory.
func WithNodeFactory(f NodeFactory) Option {
	return func(p *Parser) {
		p.factory = f
	}
}

// WithLogger attaches a logger. The parser emits debug-level events only,
// at the points where it discards or abandons malformed input.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// New creates a Parser. Without options it builds plain ast trees and
// discards log output.
func New(opts ...Option) *Parser {
	p := &Parser{
		factory: TreeFactory{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses cssText with a default Parser.
func Parse(cssText string) *ast.Stylesheet {
	return New().Parse(cssText)
}

// Parse parses cssText into a stylesheet whose range spans the whole text.
// It never fails: malformed spans become Discarded nodes, constructs cut
// short by end of input contribute nothing, and the worst possible input
// still yields a stylesheet covering [0, len(cssText)).
func (p *Parser) Parse(cssText string) *ast.Stylesheet {
	tz := tokenizer.New(cssText)
	rules := p.parseRules(tz)
	return p.factory.Stylesheet(rules, token.Range{Start: 0, End: len(cssText)})
}

// parseRules parses rules until end of input. Rulelist bodies run their own
// loop so they can stop at a closing brace.
func (p *Parser) parseRules(tz *tokenizer.Tokenizer) []ast.Rule {
	var rules []ast.Rule
	for {
		if _, ok := tz.Current(); !ok {
			return rules
		}
		if rule := p.parseRule(tz); rule != nil {
			rules = append(rules, rule)
		}
	}
}

// parseRule parses one construct at the cursor. It returns nil when the
// cursor was on whitespace (consumed silently) or when end of input cut the
// construct short. Every path consumes at least one token, so the caller's
// loop always makes progress.
func (p *Parser) parseRule(tz *tokenizer.Tokenizer) ast.Rule {
	tok, ok := tz.Current()
	if !ok {
		return nil
	}
	switch {
	case tok.Is(token.Whitespace):
		tz.Advance()
		return nil
	case tok.Is(token.Comment):
		return p.parseComment(tz)
	case tok.Is(token.Word):
		// Colon carries the word bit, so selectors like :host land here.
		return p.parseDeclarationOrRuleset(tz)
	case tok.Is(token.PropertyBoundary):
		return p.parseUnknown(tz)
	case tok.Is(token.At):
		return p.parseAtRule(tz)
	default:
		return p.parseUnknown(tz)
	}
}

// parseComment emits a Comment node covering the single comment token.
func (p *Parser) parseComment(tz *tokenizer.Tokenizer) ast.Rule {
	tok, ok := tz.Advance()
	if !ok {
		return nil
	}
	return p.factory.Comment(tz.Slice(tok, tok), tok.Range())
}

// parseUnknown consumes the current token and the run of boundary tokens
// after it, emitting one Discarded node with the exact covered text. A
// close brace is itself a boundary, so a run started inside a rulelist can
// swallow the brace that would have closed it; that rulelist then runs
// unterminated to end of text.
func (p *Parser) parseUnknown(tz *tokenizer.Tokenizer) ast.Rule {
	first, ok := tz.Advance()
	if !ok {
		return nil
	}
	last := first
	for {
		tok, ok := tz.Current()
		if !ok || !tok.Is(token.Boundary) {
			break
		}
		last = tok
		tz.Advance()
	}
	rng := tz.Range(first, last)
	p.log.Debug("discarding unparseable text",
		zap.Int("start", rng.Start),
		zap.Int("end", rng.End))
	return p.factory.Discarded(tz.Slice(first, last), rng)
}

// parseAtRule parses an at-rule: the @, a name formed from the word tokens
// immediately after it, optional raw parameters, and then either a rulelist
// body, a consumed property boundary (bare at-statement), or end of input.
// End of input before any name token was captured abandons the construct.
func (p *Parser) parseAtRule(tz *tokenizer.Tokenizer) ast.Rule {
	at, ok := tz.Advance()
	if !ok {
		return nil
	}
	end := at.End

	nameRange := token.Range{Start: at.End, End: at.End}
	named := false
	for {
		tok, ok := tz.Current()
		if !ok || !tok.Is(token.Word) {
			break
		}
		if !named {
			nameRange.Start = tok.Start
			named = true
		}
		nameRange.End = tok.End
		end = tok.End
		tz.Advance()
	}

	var (
		paramsRange token.Range
		hasParams   bool
		rulelist    *ast.Rulelist
	)
scan:
	for {
		tok, ok := tz.Current()
		if !ok {
			if !named {
				p.log.Debug("abandoning at-rule at end of input",
					zap.Int("start", at.Start))
				return nil
			}
			break scan
		}
		switch {
		case tok.Is(token.Whitespace):
			tz.Advance()
		case tok.Is(token.OpenBrace):
			var body token.Range
			rulelist, body = p.parseRulelist(tz)
			end = body.End
			break scan
		case tok.Is(token.PropertyBoundary):
			tz.Advance()
			end = tok.End
			break scan
		default:
			if !hasParams {
				paramsRange.Start = tok.Start
				hasParams = true
			}
			paramsRange.End = tok.End
			end = tok.End
			tz.Advance()
		}
	}

	var parameters string
	if hasParams {
		paramsRange = tz.TrimRange(paramsRange)
		parameters = tz.SliceRange(paramsRange)
	}
	return p.factory.AtRule(tz.SliceRange(nameRange), parameters, rulelist,
		nameRange, paramsRange, token.Range{Start: at.Start, End: end})
}

// parseRulelist parses a brace-delimited rule list. The cursor must be on
// the opening brace. The range is computed here and returned alongside the
// node so it stays usable whatever the factory returned.
func (p *Parser) parseRulelist(tz *tokenizer.Tokenizer) (*ast.Rulelist, token.Range) {
	open, _ := tz.Advance()
	end := len(tz.Source())
	var rules []ast.Rule
	for {
		tok, ok := tz.Current()
		if !ok {
			p.log.Debug("unterminated rule list",
				zap.Int("start", open.Start))
			break
		}
		if tok.Is(token.CloseBrace) {
			tz.Advance()
			end = tok.End
			break
		}
		if rule := p.parseRule(tz); rule != nil {
			rules = append(rules, rule)
		}
	}
	rng := token.Range{Start: open.Start, End: end}
	return p.factory.Rulelist(rules, rng), rng
}

// parseDeclarationOrRuleset disambiguates the constructs that begin with
// word tokens. A single forward scan accumulates the rule span and records
// the first colon seen outside parentheses; it stops, without consuming, at
// the first property boundary or open brace. Parenthesized groups are
// skipped with no nesting: the skip stops at the next close parenthesis,
// which then rejoins the normal scan. That limitation is part of the
// grammar's contract, not an oversight.
func (p *Parser) parseDeclarationOrRuleset(tz *tokenizer.Tokenizer) ast.Rule {
	var (
		ruleStart token.Token
		ruleEnd   token.Token
		started   bool
		colon     token.Token
		hasColon  bool
	)

scan:
	for {
		tok, ok := tz.Current()
		if !ok {
			// Ran off the end of the input before any terminator: the whole
			// construct is abandoned and contributes nothing.
			p.log.Debug("abandoning declaration or ruleset at end of input",
				zap.Int("start", ruleStart.Start),
				zap.Bool("scanned", started))
			return nil
		}
		switch {
		case tok.Is(token.PropertyBoundary) || tok.Is(token.OpenBrace):
			break scan
		case tok.Is(token.Whitespace):
			tz.Advance()
		case tok.Is(token.OpenParenthesis):
			for {
				inner, ok := tz.Current()
				if !ok {
					p.log.Debug("abandoning declaration or ruleset inside parentheses",
						zap.Int("start", ruleStart.Start))
					return nil
				}
				if inner.Is(token.CloseParenthesis) {
					break
				}
				tz.Advance()
			}
		default:
			if !started {
				ruleStart = tok
				started = true
			}
			if !hasColon && tok.Is(token.Colon) {
				colon = tok
				hasColon = true
			}
			ruleEnd = tok
			tz.Advance()
		}
	}

	terminator, _ := tz.Current()

	if terminator.Is(token.PropertyBoundary) {
		// A declaration. The name runs to the token before the colon; it is
		// not trimmed, so "a : b;" keeps the name "a ".
		nameEnd := ruleEnd
		if hasColon {
			if prev, ok := tz.Before(colon); ok {
				nameEnd = prev
			}
		}
		nameRange := tz.Range(ruleStart, nameEnd)
		rng := nameRange

		var value ast.Rule
		if hasColon {
			if first, ok := tz.After(colon); ok {
				exprRange := tz.TrimRange(tz.Range(first, ruleEnd))
				if !exprRange.Empty() {
					value = p.factory.Expression(tz.SliceRange(exprRange), exprRange)
					rng.End = exprRange.End
				}
			}
		}

		// A semicolon terminator belongs to the declaration; a close brace
		// is left for the enclosing rulelist.
		if terminator.Is(token.Semicolon) {
			tz.Advance()
			rng.End = terminator.End
		}

		return p.factory.Declaration(tz.SliceRange(nameRange), value, nameRange, rng)
	}

	if hasColon && colon == ruleEnd {
		// Nothing substantive between the colon and the open brace: the
		// custom property mixin form. The block is the declaration's value.
		nameEnd := ruleStart
		if prev, ok := tz.Before(colon); ok {
			nameEnd = prev
		}
		nameRange := tz.Range(ruleStart, nameEnd)

		rulelist, body := p.parseRulelist(tz)
		rng := token.Range{Start: nameRange.Start, End: body.End}
		if next, ok := tz.Current(); ok && next.Is(token.Semicolon) {
			tz.Advance()
			rng.End = next.End
		}

		var value ast.Rule
		if rulelist != nil {
			value = rulelist
		}
		return p.factory.Declaration(tz.SliceRange(nameRange), value, nameRange, rng)
	}

	// A ruleset. The accumulated span is the selector; rulesets are never
	// semicolon-terminated, so the range ends with the body.
	selectorRange := tz.Range(ruleStart, ruleEnd)
	rulelist, body := p.parseRulelist(tz)
	return p.factory.Ruleset(tz.SliceRange(selectorRange), rulelist,
		selectorRange, token.Range{Start: selectorRange.Start, End: body.End})
}
