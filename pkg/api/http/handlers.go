package http

import (
	"errors"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nsm-dev/webdemo/pkg/domain"
)

const defaultHistoryLimit = 20

// InfoResponse represents the application information payload
type InfoResponse struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Domain           string            `json:"domain"`
	NSMEnabled       bool              `json:"nsm_enabled"`
	GoVersion        string            `json:"go_version"`
	FrameworkVersion string            `json:"framework_version"`
	Timestamp        time.Time         `json:"timestamp"`
	Headers          map[string]string `json:"headers,omitempty"`
}

// ErrorResponse represents an error response body
type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// handleHome renders the interactive demo page
func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home", gin.H{
		"ProjectName": s.projectName,
		"Domain":      s.domain,
	})
}

// handleInfo returns application metadata. With a non-empty debug
// query flag the request headers are echoed back.
func (s *Server) handleInfo(c *gin.Context) {
	info := InfoResponse{
		Name:             s.projectName,
		Version:          s.version,
		Domain:           s.domain,
		NSMEnabled:       s.nsmEnabled,
		GoVersion:        runtime.Version(),
		FrameworkVersion: gin.Version,
		Timestamp:        time.Now().UTC(),
	}

	if c.Query("debug") != "" {
		headers := make(map[string]string, len(c.Request.Header))
		for name, values := range c.Request.Header {
			if len(values) > 0 {
				headers[name] = values[0]
			}
		}
		info.Headers = headers
	}

	c.JSON(http.StatusOK, info)
}

// handleHealth handles health check requests. The demo server has no
// dependencies to probe, so this always reports healthy.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    "running",
	})
}

// handleProcessMessage handles message processing requests
func (s *Server) handleProcessMessage(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Message is required"})
		return
	}

	req := &domain.MessageRequest{Message: body["message"]}
	if author, ok := body["author"].(string); ok {
		req.Author = author
	}

	msg, err := s.processor.Process(c.Request.Context(), req)
	if err != nil {
		var validationErr *domain.ValidationError
		var processingErr *domain.ProcessingError

		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		case errors.As(err, &processingErr):
			// Internal detail goes to the log, only the safe reason
			// to the caller.
			s.logger.Error("message processing failed",
				zap.String("request_id", c.GetString(requestIDKey)),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: processingErr.Reason})
		default:
			s.logger.Error("unexpected message failure",
				zap.String("request_id", c.GetString(requestIDKey)),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, errorBody("Internal Server Error", "An unexpected error occurred"))
		}
		return
	}

	c.JSON(http.StatusOK, msg)
}

// handleRecentMessages returns the processed message history
func (s *Server) handleRecentMessages(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	messages, err := s.store.Recent(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("failed to load message history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorBody("Internal Server Error", "An unexpected error occurred"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":  messages,
		"count":     len(messages),
		"timestamp": time.Now().UTC(),
	})
}

// handleNotFound is the fallback for unmatched routes
func (s *Server) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorBody("Not Found", "The requested resource was not found"))
}

// handlePanic is the fallback for panics escaping a handler
func (s *Server) handlePanic(c *gin.Context, recovered interface{}) {
	s.logger.Error("panic recovered",
		zap.String("path", c.Request.URL.Path),
		zap.Any("panic", recovered))

	c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody("Internal Server Error", "An unexpected error occurred"))
}

func errorBody(label, description string) ErrorResponse {
	now := time.Now().UTC()
	return ErrorResponse{
		Error:     label,
		Message:   description,
		Timestamp: &now,
	}
}
