// Package client is a Go client for the calcunits HTTP service.
//
// Built on go-resty/resty over a hashicorp/go-retryablehttp transport:
//   - Retries with backoff on connection errors, 429 and 5xx
//   - Optional client-side rate limiting (golang.org/x/time/rate)
//   - JSON through sonic
//
// Failed results come back as *APIError, which unwraps to the same
// sentinel errors the local packages return, so callers can use errors.Is
// with units.ErrUnknownUnit, calculator.ErrDivideByZero and friends.
//
// Example Usage:
//
//	c := client.New(client.DefaultConfig("http://localhost:8000"))
//	resp, err := c.Convert(ctx, 60, "mph", "kph")
package client
