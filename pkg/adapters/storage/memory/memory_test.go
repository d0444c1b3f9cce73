package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsm-dev/webdemo/pkg/domain"
)

func fill(t *testing.T, s *MessageStore, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		err := s.Append(context.Background(), &domain.ProcessedMessage{
			OriginalMessage: fmt.Sprintf("msg-%d", i),
		})
		require.NoError(t, err)
	}
}

func originals(msgs []*domain.ProcessedMessage) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.OriginalMessage
	}
	return out
}

func TestRecentNewestFirst(t *testing.T) {
	s := NewMessageStore(10)
	fill(t, s, 3)

	msgs, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"msg-3", "msg-2", "msg-1"}, originals(msgs))
}

func TestRecentLimit(t *testing.T) {
	s := NewMessageStore(10)
	fill(t, s, 5)

	msgs, err := s.Recent(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"msg-5", "msg-4"}, originals(msgs))
}

func TestCapacityEviction(t *testing.T) {
	s := NewMessageStore(3)
	fill(t, s, 5)

	msgs, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"msg-5", "msg-4", "msg-3"}, originals(msgs))
}

func TestRecentEmptyStore(t *testing.T) {
	s := NewMessageStore(3)

	msgs, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestRecentNonPositiveLimitReturnsAll(t *testing.T) {
	s := NewMessageStore(10)
	fill(t, s, 3)

	msgs, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 3)
}
