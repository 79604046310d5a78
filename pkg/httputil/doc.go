// Package httputil provides the JSON request and response helpers shared by
// the API handlers.
//
// # Responses
//
// [WriteJSON] encodes a value with the given status. [WriteError] maps a
// structured error to its HTTP status and writes the standard error body:
//
//	{"error": {"code": "INVALID_BOARD", "message": "row 2 has 3 values, want 4"}}
//
// Internal errors never leak their cause; clients see a generic message and
// the full error goes to the server log.
//
// # Requests
//
// [DecodeJSON] reads a bounded request body and rejects unknown fields, so a
// misspelled option fails loudly instead of being ignored.
package httputil
