// Package resttest provides an in-memory stub REST API for integration
// tests. The stub speaks the Rails-style wire contract: documents are keyed
// by the underscored type name (pluralized for collections), attribute keys
// are snake_case, and failed validations answer 422 with
// {"errors": {field: [messages]}}.
//
// Server implements testutil.TestComponent, so it composes with the
// lifecycle helpers:
//
//	api := resttest.NewServer(nil)
//	api.AddResource("famousPerson", nil)
//	testutil.T(t).Setup(api)
package resttest
