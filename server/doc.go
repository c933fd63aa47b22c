// Package server exposes the A* search over HTTP.
//
// Routes:
//
//   - GET  /healthz           liveness probe.
//   - POST /v1/search         JSON SearchRequest → SearchResponse.
//   - GET  /v1/search/stream  WebSocket: the client sends one SearchRequest,
//     the server answers with one "step" message per search step and a
//     final "result" (or "error") message, then closes.
//
// Every request parses its own grid, so concurrent searches never share
// state. Malformed grids and configuration errors map to 400 Bad Request.
package server
