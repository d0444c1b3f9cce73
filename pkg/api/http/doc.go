// Package http provides the HTTP API implementation.
//
// The server exposes:
//   - The interactive demo page
//   - Application info and health checks
//   - Message processing and history
//   - Prometheus metrics
package http
