// Package ibge is a small client for the IBGE localidades API.
//
// Two reads are supported:
//   - all states (UFs), ordered by name
//   - all municipalities of one state
//
// Requests carry a fresh X-Request-Id, open one span each, and return
// *StatusError for non-2xx answers with the method, URL and status text.
package ibge
