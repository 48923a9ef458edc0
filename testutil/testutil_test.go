package testutil

import (
	"context"
	"fmt"
	"testing"
)

// fakeComponent tracks lifecycle calls and can be told to fail.
type fakeComponent struct {
	name      string
	started   int
	stopped   int
	resets    int
	state     int
	failStart bool
	failStop  bool
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Start(context.Context) error {
	if f.failStart {
		return fmt.Errorf("start refused")
	}
	f.started++
	return nil
}

func (f *fakeComponent) Stop(context.Context) error {
	if f.failStop {
		return fmt.Errorf("stop refused")
	}
	f.stopped++
	return nil
}

func (f *fakeComponent) Reset(context.Context) error {
	f.resets++
	f.state = 0
	return nil
}

func (f *fakeComponent) Snapshot(context.Context) (interface{}, error) {
	return f.state, nil
}

func (f *fakeComponent) Restore(_ context.Context, snapshot interface{}) error {
	state, ok := snapshot.(int)
	if !ok {
		return fmt.Errorf("unexpected snapshot type %T", snapshot)
	}
	f.state = state
	return nil
}

func TestSetupAndTeardown(t *testing.T) {
	comp := &fakeComponent{name: "api"}

	cleanup, err := Setup(comp)
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if comp.started != 1 {
		t.Errorf("started = %d, want 1", comp.started)
	}

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup() error: %v", err)
	}
	if comp.stopped != 1 {
		t.Errorf("stopped = %d, want 1", comp.stopped)
	}
}

func TestSetupPropagatesStartFailure(t *testing.T) {
	comp := &fakeComponent{name: "api", failStart: true}
	if _, err := Setup(comp); err == nil {
		t.Error("Setup() should fail when the component refuses to start")
	}
}

func TestTHelperSnapshotRestore(t *testing.T) {
	comp := &fakeComponent{name: "api", state: 7}
	h := T(t)

	snapshot := h.Snapshot(comp)
	comp.state = 99
	h.Restore(comp, snapshot)
	if comp.state != 7 {
		t.Errorf("state = %d, want 7 after restore", comp.state)
	}

	h.Reset(comp)
	if comp.state != 0 || comp.resets != 1 {
		t.Errorf("reset left state=%d resets=%d", comp.state, comp.resets)
	}
}

func TestManagerLifecycle(t *testing.T) {
	first := &fakeComponent{name: "first"}
	second := &fakeComponent{name: "second"}

	m := NewManager(context.Background())
	m.Add(first)
	m.Add(second)

	if err := m.StartAll(); err != nil {
		t.Fatalf("StartAll() error: %v", err)
	}
	if first.started != 1 || second.started != 1 {
		t.Error("StartAll() should start every component")
	}

	if got := m.Get("second"); got != second {
		t.Errorf("Get(second) = %v", got)
	}
	if got := m.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}

	if err := m.ResetAll(); err != nil {
		t.Fatalf("ResetAll() error: %v", err)
	}
	if first.resets != 1 || second.resets != 1 {
		t.Error("ResetAll() should reset every component")
	}

	if err := m.StopAll(); err != nil {
		t.Fatalf("StopAll() error: %v", err)
	}
	if first.stopped != 1 || second.stopped != 1 {
		t.Error("StopAll() should stop every component")
	}
}

func TestManagerStopAllCollectsFailures(t *testing.T) {
	ok := &fakeComponent{name: "ok"}
	bad := &fakeComponent{name: "bad", failStop: true}

	m := NewManager(context.Background())
	m.Add(ok)
	m.Add(bad)

	err := m.StopAll()
	if err == nil {
		t.Fatal("StopAll() should report the failed component")
	}
	if ok.stopped != 1 {
		t.Error("StopAll() should keep stopping after a failure")
	}
}
