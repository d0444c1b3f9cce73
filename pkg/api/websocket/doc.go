// Package websocket provides the live message feed for the demo page.
package websocket
