// Package testutil provides lifecycle management for test infrastructure
// such as stub API servers.
//
// Basic usage with automatic cleanup:
//
//	func TestMyFeature(t *testing.T) {
//	    testutil.T(t).Setup(api)
//	    // api is stopped automatically when the test ends
//	}
//
// Manual cleanup:
//
//	cleanup, err := testutil.Setup(api)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer cleanup()
//
// Managing multiple components:
//
//	manager := testutil.NewManager(ctx)
//	manager.Add(api)
//	manager.Add(authStub)
//	manager.StartAll()
//	defer manager.Cleanup()
//
// All Manager operations are safe for concurrent use. Individual
// TestComponent implementations should ensure their own thread safety when
// shared across parallel tests.
package testutil
