// Package httpclient provides the generic HTTP adapter underneath the
// restkit store: a configurable client with authentication, TLS, optional
// HTTP/2, and resilience (retry, circuit breaker, rate limiting).
//
// Every non-2xx response is classified into a typed *Error by
// ClassifyStatusCode. Higher layers refine that baseline classification —
// the store pipeline passes status, body, and the baseline error through an
// injected classifier so API-specific variants (such as validation errors
// on 422) can be produced without this package knowing about them.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 30 * time.Second,
//	    Auth:    httpclient.BearerAuth("my-token"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/famous_people/1",
//	})
package httpclient
