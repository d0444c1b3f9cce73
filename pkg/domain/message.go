package domain

import "time"

// Event types published on the event bus
const (
	EventMessageProcessed = "message.processed"
)

// TopicMessages is the event bus topic carrying processed messages
const TopicMessages = "message.events"

// DefaultAuthor is used when a message request carries no author
const DefaultAuthor = "Anonymous"

// MessageRequest represents the payload accepted by the message endpoint.
// Message stays untyped until validation so that a wrong-typed value is
// reported as a processing failure instead of a bind failure.
type MessageRequest struct {
	Message interface{} `json:"message"`
	Author  string      `json:"author"`
}

// ProcessedMessage is the result of processing a message request
type ProcessedMessage struct {
	ProcessedMessage string    `json:"processed_message"`
	OriginalMessage  string    `json:"original_message"`
	Author           string    `json:"author"`
	Length           int       `json:"length"`
	WordCount        int       `json:"word_count"`
	Timestamp        time.Time `json:"timestamp"`
	ID               string    `json:"id"`
}
