// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"sort"
)

// SemanticContext is the predicate algebra attached to an ATNConfig (spec
// §4.3). Recognizer is the minimal collaborator a predicate needs to
// evaluate itself: it asks the generated recognizer to run the embedded
// boolean expression for (ruleIndex, predIndex).
type Recognizer interface {
	SempredContext(localctx RuleContext, ruleIndex, actionIndex int) bool
	Precpred(localctx RuleContext, precedence int) bool

	GetState() int
	SetState(int)
	GetATN() *ATN
	GetRuleNames() []string
	GetLiteralNames() []string
	GetSymbolicNames() []string
	GetTokenTypeDisplayName(ttype int) string
	GetErrorListenerDispatch() ErrorListener
}

type SemanticContext interface {
	Collectable[SemanticContext]
	evaluate(parser Recognizer, outerContext RuleContext) bool
	evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext
	String() string
}

// SemanticContextNONE is the always-true predicate: the context of a
// configuration with no guarding predicate.
var SemanticContextNONE SemanticContext = NewPredicate(-1, -1, false)

type Predicate struct {
	ruleIndex      int
	predIndex      int
	isCtxDependent bool
}

func NewPredicate(ruleIndex, predIndex int, isCtxDependent bool) *Predicate {
	return &Predicate{ruleIndex: ruleIndex, predIndex: predIndex, isCtxDependent: isCtxDependent}
}

func (p *Predicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	var localctx RuleContext
	if p.isCtxDependent {
		localctx = outerContext
	}
	return parser.SempredContext(localctx, p.ruleIndex, p.predIndex)
}

func (p *Predicate) evalPrecedence(Recognizer, RuleContext) SemanticContext { return p }

func (p *Predicate) Hash() int {
	return murmurCombine(murmurCombine(p.ruleIndex, p.predIndex), boolToInt(p.isCtxDependent))
}

func (p *Predicate) Equals(other SemanticContext) bool {
	o, ok := other.(*Predicate)
	return ok && o.ruleIndex == p.ruleIndex && o.predIndex == p.predIndex && o.isCtxDependent == p.isCtxDependent
}

func (p *Predicate) String() string {
	if p.ruleIndex == -1 && p.predIndex == -1 {
		return "true"
	}
	return fmt.Sprintf("{%d:%d}?", p.ruleIndex, p.predIndex)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// PrecedencePredicate guards a left-recursive-rule alternative to the
// parser's current precedence level (spec §4.7 "precedence filtering").
type PrecedencePredicate struct {
	precedence int
}

func NewPrecedencePredicate(precedence int) *PrecedencePredicate {
	return &PrecedencePredicate{precedence: precedence}
}

func (p *PrecedencePredicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	return parser.Precpred(outerContext, p.precedence)
}

func (p *PrecedencePredicate) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	if parser.Precpred(outerContext, p.precedence) {
		return SemanticContextNONE
	}
	return nil
}

func (p *PrecedencePredicate) Hash() int { return murmurCombine(1, p.precedence) }

func (p *PrecedencePredicate) Equals(other SemanticContext) bool {
	o, ok := other.(*PrecedencePredicate)
	return ok && o.precedence == p.precedence
}

func (p *PrecedencePredicate) String() string {
	return fmt.Sprintf("{%d>=prec}?", p.precedence)
}

func (p *PrecedencePredicate) compareTo(other *PrecedencePredicate) int {
	return p.precedence - other.precedence
}

type AndOperator struct {
	opnds []SemanticContext
}

type OrOperator struct {
	opnds []SemanticContext
}

// SemanticContextAnd normalizes a conjunction: flattens nested ANDs,
// dedupes, keeps only the strictest (highest) precedence predicate, and
// collapses to NONE/single-operand where possible (spec §4.3).
func SemanticContextAnd(a, b SemanticContext) SemanticContext {
	if a == nil || a == SemanticContextNONE {
		return b
	}
	if b == nil || b == SemanticContextNONE {
		return a
	}
	result := newOperandSet()
	result.addFlattened(a, false)
	result.addFlattened(b, false)

	if len(result.precedencePreds) > 0 {
		best := result.precedencePreds[0]
		for _, pp := range result.precedencePreds[1:] {
			if pp.compareTo(best) > 0 {
				best = pp
			}
		}
		result.opnds = append(result.nonPrecOpnds(), best)
	} else {
		result.opnds = result.nonPrecOpnds()
	}

	if len(result.opnds) == 0 {
		return SemanticContextNONE
	}
	if len(result.opnds) == 1 {
		return result.opnds[0]
	}
	sortContexts(result.opnds)
	return &AndOperator{opnds: result.opnds}
}

// SemanticContextOr normalizes a disjunction symmetrically to And, keeping
// the *lowest* (most permissive) precedence predicate.
func SemanticContextOr(a, b SemanticContext) SemanticContext {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a == SemanticContextNONE || b == SemanticContextNONE {
		return SemanticContextNONE
	}
	result := newOperandSet()
	result.addFlattened(a, true)
	result.addFlattened(b, true)

	if len(result.precedencePreds) > 0 {
		best := result.precedencePreds[0]
		for _, pp := range result.precedencePreds[1:] {
			if pp.compareTo(best) < 0 {
				best = pp
			}
		}
		result.opnds = append(result.nonPrecOpnds(), best)
	} else {
		result.opnds = result.nonPrecOpnds()
	}

	if len(result.opnds) == 0 {
		return SemanticContextNONE
	}
	if len(result.opnds) == 1 {
		return result.opnds[0]
	}
	sortContexts(result.opnds)
	return &OrOperator{opnds: result.opnds}
}

type operandSet struct {
	seen            map[int][]SemanticContext
	order           []SemanticContext
	precedencePreds []*PrecedencePredicate
}

func newOperandSet() *operandSet {
	return &operandSet{seen: map[int][]SemanticContext{}}
}

func (s *operandSet) addFlattened(ctx SemanticContext, or bool) {
	switch v := ctx.(type) {
	case *AndOperator:
		if !or {
			for _, o := range v.opnds {
				s.add(o)
			}
			return
		}
	case *OrOperator:
		if or {
			for _, o := range v.opnds {
				s.add(o)
			}
			return
		}
	}
	s.add(ctx)
}

func (s *operandSet) add(ctx SemanticContext) {
	if pp, ok := ctx.(*PrecedencePredicate); ok {
		s.precedencePreds = append(s.precedencePreds, pp)
		return
	}
	h := ctx.Hash()
	for _, existing := range s.seen[h] {
		if existing.Equals(ctx) {
			return
		}
	}
	s.seen[h] = append(s.seen[h], ctx)
	s.order = append(s.order, ctx)
}

func (s *operandSet) nonPrecOpnds() []SemanticContext {
	return append([]SemanticContext{}, s.order...)
}

func sortContexts(ctxs []SemanticContext) {
	sort.Slice(ctxs, func(i, j int) bool { return ctxs[i].Hash() < ctxs[j].Hash() })
}

func (a *AndOperator) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, o := range a.opnds {
		if !o.evaluate(parser, outerContext) {
			return false
		}
	}
	return true
}

func (a *AndOperator) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	differs := false
	var operands []SemanticContext
	for _, ctx := range a.opnds {
		evaluated := ctx.evalPrecedence(parser, outerContext)
		differs = differs || evaluated != ctx
		if evaluated == nil {
			return nil
		}
		if evaluated != SemanticContextNONE {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return a
	}
	if len(operands) == 0 {
		return SemanticContextNONE
	}
	result := operands[0]
	for _, o := range operands[1:] {
		result = SemanticContextAnd(result, o)
	}
	return result
}

func (a *AndOperator) Hash() int {
	h := murmurInit(0)
	for _, o := range a.opnds {
		h = murmurUpdate(h, o.Hash())
	}
	return murmurFinish(h, len(a.opnds))
}

func (a *AndOperator) Equals(other SemanticContext) bool {
	o, ok := other.(*AndOperator)
	if !ok || len(o.opnds) != len(a.opnds) {
		return false
	}
	for i := range a.opnds {
		if !a.opnds[i].Equals(o.opnds[i]) {
			return false
		}
	}
	return true
}

func (a *AndOperator) String() string {
	return joinContexts(a.opnds, "&&")
}

func (o *OrOperator) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, op := range o.opnds {
		if op.evaluate(parser, outerContext) {
			return true
		}
	}
	return false
}

func (o *OrOperator) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	differs := false
	var operands []SemanticContext
	for _, ctx := range o.opnds {
		evaluated := ctx.evalPrecedence(parser, outerContext)
		differs = differs || evaluated != ctx
		if evaluated == SemanticContextNONE {
			return SemanticContextNONE
		}
		if evaluated != nil {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return o
	}
	if len(operands) == 0 {
		return nil
	}
	result := operands[0]
	for _, op := range operands[1:] {
		result = SemanticContextOr(result, op)
	}
	return result
}

func (o *OrOperator) Hash() int {
	h := murmurInit(1)
	for _, op := range o.opnds {
		h = murmurUpdate(h, op.Hash())
	}
	return murmurFinish(h, len(o.opnds))
}

func (o *OrOperator) Equals(other SemanticContext) bool {
	x, ok := other.(*OrOperator)
	if !ok || len(x.opnds) != len(o.opnds) {
		return false
	}
	for i := range o.opnds {
		if !o.opnds[i].Equals(x.opnds[i]) {
			return false
		}
	}
	return true
}

func (o *OrOperator) String() string {
	return joinContexts(o.opnds, "||")
}

func joinContexts(ctxs []SemanticContext, sep string) string {
	s := ""
	for i, c := range ctxs {
		if i > 0 {
			s += sep
		}
		s += c.String()
	}
	return s
}
