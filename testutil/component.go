package testutil

import "context"

// Component is the minimal lifecycle contract for test infrastructure.
type Component interface {
	// Name identifies the component in logs and error messages.
	Name() string

	// Start brings the component up. It must be callable once per lifecycle.
	Start(ctx context.Context) error

	// Stop tears the component down, releasing any resources it holds.
	Stop(ctx context.Context) error
}

// TestComponent extends Component with state management used between test
// cases.
type TestComponent interface {
	Component

	// Reset restores the component to its initial state, typically between
	// test cases to keep them isolated.
	Reset(ctx context.Context) error

	// Snapshot captures the current state of the component. The returned
	// value can be passed to Restore to return to this state.
	Snapshot(ctx context.Context) (interface{}, error)

	// Restore returns the component to a previously captured state.
	Restore(ctx context.Context, snapshot interface{}) error
}
