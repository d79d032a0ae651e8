// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// ATNConfigSet is the subset-construction workspace described in spec
// §4.5: an insertion-ordered list of configurations plus a hash index on
// (state, alt, semanticContext) so getOrAdd is amortized O(1) and merges
// contexts in place instead of growing the set.
type ATNConfigSet struct {
	configs  []ATNConfig
	index    map[int][]int // hash -> indices into configs, for congruence lookup
	cachedHash int
	hashDirty  bool

	fullCtx bool

	conflictingAlts *BitSet
	hasSemanticContext bool
	dipsIntoOuterContext bool
	uniqueAlt int

	readOnly bool
}

func NewATNConfigSet(fullCtx bool) *ATNConfigSet {
	return &ATNConfigSet{
		configs: make([]ATNConfig, 0),
		index:   map[int][]int{},
		fullCtx: fullCtx,
	}
}

func NewOrderedATNConfigSet() *ATNConfigSet {
	return NewATNConfigSet(true)
}

// Add inserts cfg, merging its context into a congruent existing
// configuration when found (spec §4.5 "ConfigSet insertion" property), or
// appending a fresh entry otherwise. Add never rejects a configuration
// and always returns true.
func (s *ATNConfigSet) Add(cfg ATNConfig, cache *mergeCache) bool {
	if s.readOnly {
		panic("IllegalState: cannot mutate a read-only ATNConfigSet")
	}
	if cfg.GetSemanticContext() != SemanticContextNONE {
		s.hasSemanticContext = true
	}
	if cfg.GetReachesIntoOuterContext() > 0 {
		s.dipsIntoOuterContext = true
	}

	h := cfg.Hash()
	for _, idx := range s.index[h] {
		existing := s.configs[idx]
		if existing.Equals(cfg) {
			rootIsWildcard := !s.fullCtx
			merged := merge(existing.GetContext(), cfg.GetContext(), rootIsWildcard, cache)
			existing.SetReachesIntoOuterContext(maxInt(existing.GetReachesIntoOuterContext(), cfg.GetReachesIntoOuterContext()))
			existing.SetContext(merged)
			s.hashDirty = true
			return true
		}
	}
	s.configs = append(s.configs, cfg)
	s.index[h] = append(s.index[h], len(s.configs)-1)
	s.hashDirty = true
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (s *ATNConfigSet) GetStates() map[ATNState]bool {
	out := map[ATNState]bool{}
	for _, c := range s.configs {
		out[c.GetState()] = true
	}
	return out
}

func (s *ATNConfigSet) GetPredicates() []SemanticContext {
	var out []SemanticContext
	for _, c := range s.configs {
		if c.GetSemanticContext() != SemanticContextNONE {
			out = append(out, c.GetSemanticContext())
		}
	}
	return out
}

func (s *ATNConfigSet) GetItems() []ATNConfig { return s.configs }

func (s *ATNConfigSet) Length() int { return len(s.configs) }

func (s *ATNConfigSet) IsEmpty() bool { return len(s.configs) == 0 }

func (s *ATNConfigSet) Contains(cfg ATNConfig) bool {
	h := cfg.Hash()
	for _, idx := range s.index[h] {
		if s.configs[idx].Equals(cfg) {
			return true
		}
	}
	return false
}

func (s *ATNConfigSet) Clear() {
	if s.readOnly {
		panic("IllegalState: cannot mutate a read-only ATNConfigSet")
	}
	s.configs = s.configs[:0]
	s.index = map[int][]int{}
}

// SetReadonly freezes the set once it is installed as a DFA state's
// configs (spec §3 DFAState lifecycle): further Add/Clear calls panic so
// concurrent readers (spec §5) can traverse it lock-free.
func (s *ATNConfigSet) SetReadonly(v bool) { s.readOnly = v }
func (s *ATNConfigSet) ReadOnly() bool     { return s.readOnly }

func (s *ATNConfigSet) GetConflictingAlts() *BitSet        { return s.conflictingAlts }
func (s *ATNConfigSet) SetConflictingAlts(b *BitSet)       { s.conflictingAlts = b }
func (s *ATNConfigSet) FullContext() bool                  { return s.fullCtx }
func (s *ATNConfigSet) HasSemanticContext() bool           { return s.hasSemanticContext }
func (s *ATNConfigSet) SetHasSemanticContext(v bool)       { s.hasSemanticContext = v }
func (s *ATNConfigSet) DipsIntoOuterContext() bool         { return s.dipsIntoOuterContext }
func (s *ATNConfigSet) GetUniqueAlt() int                  { return s.uniqueAlt }
func (s *ATNConfigSet) SetUniqueAlt(v int)                 { s.uniqueAlt = v }

// Hash is over the ordered configuration list, matching the spec's
// equality rule for DFAState installation: two config sets are equal iff
// their ordered configs are equal and their fullCtx flags match (readOnly
// is ignored).
func (s *ATNConfigSet) Hash() int {
	if s.hashDirty {
		h := murmurInit(1)
		for _, c := range s.configs {
			h = murmurUpdate(h, c.Hash())
		}
		s.cachedHash = murmurFinish(h, len(s.configs))
		s.hashDirty = false
	}
	return s.cachedHash
}

func (s *ATNConfigSet) Equals(other *ATNConfigSet) bool {
	if other == nil {
		return false
	}
	if s == other {
		return true
	}
	if len(s.configs) != len(other.configs) {
		return false
	}
	if s.fullCtx != other.fullCtx {
		return false
	}
	for i, c := range s.configs {
		if !c.Equals(other.configs[i]) {
			return false
		}
	}
	return true
}

func (s *ATNConfigSet) String() string {
	str := "["
	for i, c := range s.configs {
		if i > 0 {
			str += ", "
		}
		str += c.String()
	}
	str += "]"
	if s.hasSemanticContext {
		str += fmt.Sprintf(",hasSemanticContext=%v", s.hasSemanticContext)
	}
	if s.uniqueAlt != 0 && s.uniqueAlt != ATNInvalidAltNumber {
		str += fmt.Sprintf(",uniqueAlt=%d", s.uniqueAlt)
	}
	if s.conflictingAlts != nil {
		str += ",conflictingAlts=" + s.conflictingAlts.String()
	}
	if s.dipsIntoOuterContext {
		str += ",dipsIntoOuterContext"
	}
	return str
}

// The lexer's config sets come from NewOrderedATNConfigSet, which is a
// plain full-context ATNConfigSet: Add merges congruent configurations
// there as well. Lexer configs that differ in their non-greedy flag or
// action executor stay distinct entries because LexerATNConfig.Hash/Equals
// include those fields.
