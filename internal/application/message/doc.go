// Package message implements the message processing pipeline.
//
// The processor uppercases the incoming text, derives length and word
// count, stamps the result and fans it out to the history store and
// the event bus.
package message
