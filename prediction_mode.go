// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// PredictionMode selects which conflict criterion the parser ATN
// simulator's adaptivePredict loop applies (spec §4.7). SLL is the default
// fast path; LL is the full-context fallback.
type PredictionMode int

const (
	PredictionModeSLL PredictionMode = iota
	PredictionModeLL
	PredictionModeLLExactAmbigDetection
)

// altAndContextMap groups configs by (state, context) identity so that
// alts co-occurring in the same group are "co-conflicting" per spec
// §4.7's conflict definition.
type altAndContextMap struct {
	keys   []*altAndContextKey
	values []*BitSet
}

type altAndContextKey struct {
	state   ATNState
	context PredictionContext
}

func (m *altAndContextMap) get(k *altAndContextKey) (*BitSet, bool) {
	for i, existing := range m.keys {
		if existing.state == k.state && contextsEqual(existing.context, k.context) {
			return m.values[i], true
		}
	}
	return nil, false
}

func (m *altAndContextMap) put(k *altAndContextKey, v *BitSet) {
	m.keys = append(m.keys, k)
	m.values = append(m.values, v)
}

func contextsEqual(a, b PredictionContext) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Equals(b)
}

// getConflictingAltSubsets partitions configs's configurations by (state,
// context) and returns, per partition, the set of alts present — this is
// the shared machinery spec §4.7 calls "PredictionMode.getConflictingAltSubsets".
func getConflictingAltSubsets(configs *ATNConfigSet) []*BitSet {
	m := &altAndContextMap{}
	for _, c := range configs.GetItems() {
		k := &altAndContextKey{state: c.GetState(), context: c.GetContext()}
		alts, ok := m.get(k)
		if !ok {
			alts = NewBitSet()
			m.put(k, alts)
		}
		alts.Add(c.GetAlt())
	}
	return m.values
}

// getStateToAltMap groups alts purely by ATN state, ignoring context — used
// to test "unique alt" without a full conflict computation.
func getStateToAltMap(configs *ATNConfigSet) map[ATNState]*BitSet {
	out := map[ATNState]*BitSet{}
	for _, c := range configs.GetItems() {
		alts, ok := out[c.GetState()]
		if !ok {
			alts = NewBitSet()
			out[c.GetState()] = alts
		}
		alts.Add(c.GetAlt())
	}
	return out
}

// hasSLLConflictTerminatingPrediction implements spec §4.7's SLL conflict
// criterion: a set whose configs are all in rule-stop states always
// terminates; in SLL mode a set that dips into the outer context never
// does; otherwise any (state, context) partition with 2+ alts is a
// conflict, UNLESS some ATN state is reached by exactly one alt
// (hasStateAssociatedWithOneAlt).
func hasSLLConflictTerminatingPrediction(mode PredictionMode, configs *ATNConfigSet) bool {
	if allConfigsInRuleStopStates(configs) {
		return true
	}
	if mode == PredictionModeSLL && configs.DipsIntoOuterContext() {
		return false
	}
	altsets := getConflictingAltSubsets(configs)
	return hasConflictingAltSet(altsets) && !hasStateAssociatedWithOneAlt(configs)
}

func hasConflictingAltSet(altsets []*BitSet) bool {
	for _, s := range altsets {
		if s.Len() > 1 {
			return true
		}
	}
	return false
}

func hasStateAssociatedWithOneAlt(configs *ATNConfigSet) bool {
	for _, alts := range getStateToAltMap(configs) {
		if alts.Len() == 1 {
			return true
		}
	}
	return false
}

func allConfigsInRuleStopStates(configs *ATNConfigSet) bool {
	for _, c := range configs.GetItems() {
		if _, ok := c.GetState().(*RuleStopState); !ok {
			return false
		}
	}
	return true
}

// getUniqueAlt returns the single alt shared by every config, or
// ATNInvalidAltNumber if configs disagree.
func getUniqueAlt(configs *ATNConfigSet) int {
	alt := ATNInvalidAltNumber
	for _, c := range configs.GetItems() {
		if alt == ATNInvalidAltNumber {
			alt = c.GetAlt()
		} else if c.GetAlt() != alt {
			return ATNInvalidAltNumber
		}
	}
	return alt
}

// resolvesToJustOneViableAlt takes the lowest alt of each partition and
// returns it when every partition yields the same one; otherwise it
// returns ATNInvalidAltNumber (see getSingleViableAlt).
func resolvesToJustOneViableAlt(altsets []*BitSet) int {
	return getSingleViableAlt(altsets)
}

func getSingleViableAlt(altsets []*BitSet) int {
	viable := NewBitSet()
	for _, alts := range altsets {
		minAlt := -1
		for _, a := range alts.Values() {
			if minAlt == -1 || a < minAlt {
				minAlt = a
			}
		}
		if minAlt >= 0 {
			viable.Add(minAlt)
		}
	}
	if viable.Len() != 1 {
		return ATNInvalidAltNumber
	}
	return viable.Values()[0]
}

// allSubsetsConflict reports true when every partition has more than one
// alt — part of the LL (full-context) conflict test.
func allSubsetsConflict(altsets []*BitSet) bool {
	for _, s := range altsets {
		if s.Len() <= 1 {
			return false
		}
	}
	return true
}

// getAlts unions every partition's alt set into one BitSet.
func getAlts(altsets []*BitSet) *BitSet {
	all := NewBitSet()
	for _, s := range altsets {
		all = all.Or(s)
	}
	return all
}

// hasNonConflictingAltSet reports whether any partition is conflict-free
// (exactly one alt), which an LL conflict must NOT have per spec §4.7
// "every stack yields >= 2 alts".
func hasNonConflictingAltSet(altsets []*BitSet) bool {
	for _, s := range altsets {
		if s.Len() == 1 {
			return true
		}
	}
	return false
}
