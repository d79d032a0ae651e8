// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

func newTestState(n int) *BasicState {
	s := NewBasicState()
	s.SetStateNumber(n)
	return s
}

func TestATNConfigSetAddMergesCongruentConfigsContexts(t *testing.T) {
	state := newTestState(1)
	cache := newMergeCache()
	set := NewATNConfigSet(false)

	ctxA := NewSingletonPredictionContext(BasePredictionContextEMPTY, 10)
	ctxB := NewSingletonPredictionContext(BasePredictionContextEMPTY, 20)

	set.Add(NewATNConfig5(state, 1, ctxA), cache)
	set.Add(NewATNConfig5(state, 1, ctxB), cache)

	if got, want := set.Length(), 1; got != want {
		t.Fatalf("Length() = %d, want %d (congruent configs must merge into one entry)", got, want)
	}
	merged := set.GetItems()[0]
	if _, ok := merged.GetContext().(*ArrayPredictionContext); !ok {
		t.Fatalf("expected the merged context to union both return states, got %T", merged.GetContext())
	}
}

func TestATNConfigSetAddKeepsDistinctAltsSeparate(t *testing.T) {
	state := newTestState(1)
	set := NewATNConfigSet(false)
	ctx := NewSingletonPredictionContext(BasePredictionContextEMPTY, 10)

	set.Add(NewATNConfig5(state, 1, ctx), nil)
	set.Add(NewATNConfig5(state, 2, ctx), nil)

	if got, want := set.Length(), 2; got != want {
		t.Fatalf("Length() = %d, want %d", got, want)
	}
}

func TestATNConfigSetContains(t *testing.T) {
	state := newTestState(1)
	ctx := NewSingletonPredictionContext(BasePredictionContextEMPTY, 10)
	cfg := NewATNConfig5(state, 1, ctx)

	set := NewATNConfigSet(false)
	set.Add(cfg, nil)

	if !set.Contains(cfg) {
		t.Fatalf("expected set to contain the config it was given")
	}
	other := NewATNConfig5(newTestState(2), 1, ctx)
	if set.Contains(other) {
		t.Fatalf("expected set not to contain a config with a different state")
	}
}

func TestATNConfigSetSetReadonlyPanicsOnAdd(t *testing.T) {
	set := NewATNConfigSet(false)
	set.SetReadonly(true)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Add on a read-only config set to panic")
		}
	}()
	set.Add(NewATNConfig5(newTestState(1), 1, BasePredictionContextEMPTY), nil)
}

func TestATNConfigSetEqualsComparesOrderedConfigs(t *testing.T) {
	state := newTestState(1)
	ctx := NewSingletonPredictionContext(BasePredictionContextEMPTY, 10)

	a := NewATNConfigSet(false)
	a.Add(NewATNConfig5(state, 1, ctx), nil)

	b := NewATNConfigSet(false)
	b.Add(NewATNConfig5(state, 1, ctx), nil)

	if !a.Equals(b) {
		t.Fatalf("expected two config sets built from equal configs to be Equals")
	}

	c := NewATNConfigSet(false)
	c.Add(NewATNConfig5(state, 2, ctx), nil)
	if a.Equals(c) {
		t.Fatalf("expected config sets with different alts not to be Equals")
	}
}
