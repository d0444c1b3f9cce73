// Package events contains event bus adapters.
//
// The memory subpackage provides the in-process bus used to stream
// processed messages to WebSocket clients.
package events
