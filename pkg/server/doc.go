// Package server implements the external choice-transport boundary a
// hosted battle sits behind (§6): a websocket carrying per-turn
// move/switch/item/escape/forfeit/pass choices as JSON-RPC-shaped
// messages, per-client-IP rate limiting, and Prometheus metrics. It is
// deliberately thin — the battle rules themselves live in pkg/battle;
// this package only adapts that engine to a network boundary.
//
// # Architecture
//
// Server owns one *battle.Battle plus the map of connected Sessions. A
// Session is created on websocket upgrade and identifies which side/
// player the connection speaks for. Submitted choices are validated
// against that binding, queued through battle.Battle.BeginTurn once
// every connected session for the turn has submitted, and the resulting
// log entries are broadcast back over each session's connection.
//
// # Operational features
//
//   - Rate limiting (ratelimit.go) — token-bucket per client IP.
//   - Metrics (metrics.go) — connection/choice/turn counters exposed
//     at /metrics via promhttp.
//   - Middleware (middleware.go) — request-ID correlation, structured
//     logging, panic recovery, CORS — generic HTTP ambient tooling.
//   - Transport (transport.go) — the websocket choice request/response
//     boundary itself: decodes a choice, binds it to the session's
//     side/player, and replies with the turn's log entries once the
//     battle finishes resolving.
package server
