// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

func TestDiagnosticErrorListenerGetConflictingAltsReturnsReportedAltsUnchanged(t *testing.T) {
	d := NewDiagnosticErrorListener(true)
	reported := NewBitSet()
	reported.Add(1)
	reported.Add(3)

	got := d.getConflictingAlts(reported, nil)
	if got != reported {
		t.Fatalf("expected getConflictingAlts to return the already-known alt set unchanged")
	}
}

func TestDiagnosticErrorListenerGetConflictingAltsDerivesFromConfigsWhenNil(t *testing.T) {
	d := NewDiagnosticErrorListener(true)
	state := newTestState(1)
	ctx := BasePredictionContextEMPTY

	configs := NewATNConfigSet(false)
	configs.Add(NewATNConfig5(state, 1, ctx), nil)
	configs.Add(NewATNConfig5(state, 2, ctx), nil)

	got := d.getConflictingAlts(nil, configs)
	if !got.Contains(1) || !got.Contains(2) {
		t.Fatalf("expected derived alt set to contain every alt present in configs, got %s", got.String())
	}
}

func TestBaseErrorListenerMethodsAreNoOps(t *testing.T) {
	b := &BaseErrorListener{}
	// None of these should panic even with nil/zero arguments; BaseErrorListener
	// exists purely so embedders only need to override what they care about.
	b.SyntaxError(nil, nil, 0, 0, "", nil)
	b.ReportAmbiguity(nil, nil, 0, 0, false, nil, nil)
	b.ReportAttemptingFullContext(nil, nil, 0, 0, nil, nil)
	b.ReportContextSensitivity(nil, nil, 0, 0, 0, nil)
}
