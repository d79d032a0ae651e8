// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

func TestMergeIdenticalContextsReturnsSamePointer(t *testing.T) {
	ctx := NewSingletonPredictionContext(BasePredictionContextEMPTY, 5)
	got := merge(ctx, ctx, false, nil)
	if got != PredictionContext(ctx) {
		t.Fatalf("merge(a, a) should return a unchanged")
	}
}

func TestMergeSingletonsSameReturnStateMergesParents(t *testing.T) {
	parentA := NewSingletonPredictionContext(BasePredictionContextEMPTY, 1)
	parentB := NewSingletonPredictionContext(BasePredictionContextEMPTY, 2)
	a := NewSingletonPredictionContext(parentA, 10)
	b := NewSingletonPredictionContext(parentB, 10)

	merged := merge(a, b, false, newMergeCache())

	single, ok := merged.(*SingletonPredictionContext)
	if !ok {
		t.Fatalf("expected merged result to stay a single return state with a merged (array) parent, got %T", merged)
	}
	if single.returnState != 10 {
		t.Fatalf("expected the shared return state 10 to be kept, got %d", single.returnState)
	}
	arr, ok := single.parent.(*ArrayPredictionContext)
	if !ok {
		t.Fatalf("expected the merged parent to be an *ArrayPredictionContext, got %T", single.parent)
	}
	if arr.length() != 2 {
		t.Fatalf("expected the merged parent to hold both original parents, got length %d", arr.length())
	}
}

func TestMergeSingletonsDistinctReturnStatesProducesSortedArray(t *testing.T) {
	a := NewSingletonPredictionContext(BasePredictionContextEMPTY, 20)
	b := NewSingletonPredictionContext(BasePredictionContextEMPTY, 10)

	merged := merge(a, b, false, newMergeCache())
	arr, ok := merged.(*ArrayPredictionContext)
	if !ok {
		t.Fatalf("expected *ArrayPredictionContext, got %T", merged)
	}
	if arr.length() != 2 {
		t.Fatalf("expected 2 entries, got %d", arr.length())
	}
	if arr.getReturnState(0) != 10 || arr.getReturnState(1) != 20 {
		t.Fatalf("expected return states sorted ascending, got [%d %d]", arr.getReturnState(0), arr.getReturnState(1))
	}
}

func TestMergeRootWithSLLWildcardAbsorbsIntoEmpty(t *testing.T) {
	if got := SingletonBasePredictionContextCreate(nil, predictionContextEmptyReturnState); got != PredictionContext(BasePredictionContextEMPTY) {
		t.Fatalf("SingletonBasePredictionContextCreate should have returned the shared EMPTY sentinel")
	}
	b := NewSingletonPredictionContext(BasePredictionContextEMPTY, 7)

	// rootIsWildcard = true is the SLL merge semantics: EMPTY at the root
	// means "anything could follow", so it must absorb b entirely.
	got := merge(BasePredictionContextEMPTY, b, true, newMergeCache())
	if got != PredictionContext(BasePredictionContextEMPTY) {
		t.Fatalf("expected SLL wildcard merge to collapse to EMPTY, got %v", got)
	}
}

func TestMergeRootWithFullContextUnionsRatherThanAbsorbs(t *testing.T) {
	b := NewSingletonPredictionContext(BasePredictionContextEMPTY, 7)

	// rootIsWildcard = false is the full-context semantics: EMPTY must be
	// preserved as a distinct alternative, not swallow b.
	got := merge(BasePredictionContextEMPTY, b, false, newMergeCache())
	arr, ok := got.(*ArrayPredictionContext)
	if !ok {
		t.Fatalf("expected full-context merge to produce an array unioning both alternatives, got %T", got)
	}
	if arr.length() != 2 {
		t.Fatalf("expected 2 entries (the return state plus EMPTY), got %d", arr.length())
	}
}

func TestPredictionContextCacheInternsStructurallyEqualContexts(t *testing.T) {
	cache := NewPredictionContextCache()

	a := cache.add(NewSingletonPredictionContext(BasePredictionContextEMPTY, 42))
	b := cache.add(NewSingletonPredictionContext(BasePredictionContextEMPTY, 42))

	if a != b {
		t.Fatalf("expected two structurally-equal contexts to intern to the same pointer")
	}

	c := cache.add(NewSingletonPredictionContext(BasePredictionContextEMPTY, 43))
	if a == c {
		t.Fatalf("expected a structurally-different context not to intern to the same pointer")
	}
}

func TestPredictionContextFromRuleContextEmptyOuterContextIsEmpty(t *testing.T) {
	got := predictionContextFromRuleContext(&ATN{}, nil)
	if got != PredictionContext(BasePredictionContextEMPTY) {
		t.Fatalf("expected a nil outer context to produce the shared EMPTY context")
	}
}
