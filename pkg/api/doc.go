// Package api serves the solvers over HTTP.
//
// # Routes
//
//	POST /v1/fifteen       solve a sliding-tile board
//	POST /v1/superqueens   place n superqueens
//	GET  /v1/runs          list recorded runs (?puzzle=fifteen&limit=20)
//	GET  /v1/runs/{id}     fetch one run
//	GET  /healthz          build information
//
// Request bodies are JSON and unknown fields are rejected. A successful solve
// answers 200 with the [solver.Result]. Errors use the body described in
// package httputil; when a search stops early (expansion cap or timeout) the
// partial result is included under "result" next to the error.
//
// Every request's expansion budget is clamped to the server's configured
// search limit, and each search runs under the configured timeout.
package api
