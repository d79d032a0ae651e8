// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

// fakeRecognizer is a minimal Recognizer used only to drive predicate
// evaluation in these tests.
type fakeRecognizer struct {
	sempredResult bool
	precedence    int
}

func (f *fakeRecognizer) SempredContext(RuleContext, int, int) bool { return f.sempredResult }
func (f *fakeRecognizer) Precpred(_ RuleContext, precedence int) bool {
	return f.precedence >= precedence
}
func (f *fakeRecognizer) GetState() int                              { return 0 }
func (f *fakeRecognizer) SetState(int)                               {}
func (f *fakeRecognizer) GetATN() *ATN                                { return nil }
func (f *fakeRecognizer) GetRuleNames() []string                     { return nil }
func (f *fakeRecognizer) GetLiteralNames() []string                  { return nil }
func (f *fakeRecognizer) GetSymbolicNames() []string                 { return nil }
func (f *fakeRecognizer) GetTokenTypeDisplayName(int) string          { return "" }
func (f *fakeRecognizer) GetErrorListenerDispatch() ErrorListener     { return NewConsoleErrorListener() }

func TestSemanticContextAndWithNoneCollapses(t *testing.T) {
	p := NewPredicate(1, 1, false)
	if got := SemanticContextAnd(p, SemanticContextNONE); got != SemanticContext(p) {
		t.Fatalf("AND with NONE should return the other operand unchanged")
	}
	if got := SemanticContextAnd(SemanticContextNONE, p); got != SemanticContext(p) {
		t.Fatalf("AND with NONE should return the other operand unchanged")
	}
}

func TestSemanticContextAndDedupesIdenticalPredicates(t *testing.T) {
	p := NewPredicate(1, 1, false)
	got := SemanticContextAnd(p, NewPredicate(1, 1, false))
	if got != SemanticContext(p) {
		t.Fatalf("AND of two equal predicates should collapse to a single operand, got %v", got)
	}
}

func TestSemanticContextAndFlattensNestedAnd(t *testing.T) {
	a := NewPredicate(1, 1, false)
	b := NewPredicate(2, 2, false)
	c := NewPredicate(3, 3, false)

	nested := SemanticContextAnd(a, b)
	got := SemanticContextAnd(nested, c)

	and, ok := got.(*AndOperator)
	if !ok {
		t.Fatalf("expected *AndOperator, got %T", got)
	}
	if len(and.opnds) != 3 {
		t.Fatalf("expected nested AND to flatten into 3 operands, got %d", len(and.opnds))
	}
}

func TestSemanticContextAndKeepsStrictestPrecedencePredicate(t *testing.T) {
	strict := NewPrecedencePredicate(5)
	loose := NewPrecedencePredicate(2)

	got := SemanticContextAnd(strict, loose)
	pp, ok := got.(*PrecedencePredicate)
	if !ok {
		t.Fatalf("expected a single surviving precedence predicate, got %T", got)
	}
	if pp.precedence != 5 {
		t.Fatalf("AND must keep the highest (strictest) precedence predicate, got %d", pp.precedence)
	}
}

func TestSemanticContextOrKeepsMostPermissivePrecedencePredicate(t *testing.T) {
	strict := NewPrecedencePredicate(5)
	loose := NewPrecedencePredicate(2)

	got := SemanticContextOr(strict, loose)
	pp, ok := got.(*PrecedencePredicate)
	if !ok {
		t.Fatalf("expected a single surviving precedence predicate, got %T", got)
	}
	if pp.precedence != 2 {
		t.Fatalf("OR must keep the lowest (most permissive) precedence predicate, got %d", pp.precedence)
	}
}

func TestAndOperatorEvaluateRequiresAllTrue(t *testing.T) {
	rec := &fakeRecognizer{sempredResult: true}
	and := SemanticContextAnd(NewPredicate(1, 1, false), NewPredicate(1, 2, false))
	if !and.evaluate(rec, nil) {
		t.Fatalf("expected AND to evaluate true when the recognizer reports every predicate true")
	}

	rec.sempredResult = false
	if and.evaluate(rec, nil) {
		t.Fatalf("expected AND to evaluate false when the recognizer reports predicates false")
	}
}

func TestPrecedencePredicateEvalPrecedence(t *testing.T) {
	pp := NewPrecedencePredicate(3)
	rec := &fakeRecognizer{precedence: 5}

	if got := pp.evalPrecedence(rec, nil); got != SemanticContextNONE {
		t.Fatalf("expected a satisfied precedence predicate to evaluate to NONE, got %v", got)
	}

	rec.precedence = 1
	if got := pp.evalPrecedence(rec, nil); got != nil {
		t.Fatalf("expected an unsatisfied precedence predicate to evaluate to nil, got %v", got)
	}
}
