// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATNSimulatorError is the sentinel DFAState installed for an edge that
// provably leads nowhere (no viable alt) — distinct from a nil edge,
// which means "not yet computed" (spec §4.7 "INT_MAX marks error states").
var ATNSimulatorError = NewDFAState(DFAStateErrorStateNumber, NewATNConfigSet(false))

// ATNSimulator is the shared base of LexerATNSimulator and
// ParserATNSimulator: both own a reference to the immutable ATN and a
// PredictionContextCache used to intern call-stack nodes for the
// simulation they are currently running (spec §4.2).
type ATNSimulator struct {
	atn *ATN
	sharedContextCache *PredictionContextCache
}

func NewATNSimulator(atn *ATN, sharedContextCache *PredictionContextCache) *ATNSimulator {
	return &ATNSimulator{atn: atn, sharedContextCache: sharedContextCache}
}

func (s *ATNSimulator) getCachedContext(context PredictionContext) PredictionContext {
	if s.sharedContextCache == nil {
		return context
	}
	visited := map[PredictionContext]PredictionContext{}
	return getCachedBasePredictionContext(context, s.sharedContextCache, visited)
}

// getCachedBasePredictionContext recursively interns context and its
// ancestors into cache, matching spec §4.2's canonicalization requirement
// that structurally equal contexts resolve to the same pointer.
func getCachedBasePredictionContext(context PredictionContext, cache *PredictionContextCache, visited map[PredictionContext]PredictionContext) PredictionContext {
	if context.isEmpty() {
		return context
	}
	if existing, ok := visited[context]; ok {
		return existing
	}
	if existing, ok := cache.get(context); ok {
		visited[context] = existing
		return existing
	}

	changed := false
	parents := make([]PredictionContext, context.length())
	for i := 0; i < context.length(); i++ {
		parent := context.GetParent(i)
		if parent == nil {
			parents[i] = nil
			continue
		}
		updated := getCachedBasePredictionContext(parent, cache, visited)
		parents[i] = updated
		if changed || updated != parent {
			changed = true
		}
	}

	var updatedCtx PredictionContext
	if !changed {
		updatedCtx = cache.add(context)
		visited[context] = updatedCtx
		return updatedCtx
	}

	switch c := context.(type) {
	case *SingletonPredictionContext:
		updatedCtx = SingletonBasePredictionContextCreate(parents[0], c.returnState)
	case *ArrayPredictionContext:
		states := make([]int, context.length())
		for i := 0; i < context.length(); i++ {
			states[i] = c.returnStates[i]
		}
		updatedCtx = NewArrayPredictionContext(parents, states)
	default:
		updatedCtx = context
	}

	updatedCtx = cache.add(updatedCtx)
	visited[context] = updatedCtx
	visited[updatedCtx] = updatedCtx
	return updatedCtx
}
