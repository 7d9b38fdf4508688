package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderAssistant
}

type Message struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionStore keeps per-session chat history in Redis. History is a
// capped list with a rolling TTL; an expired session simply reads back
// empty.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	maxLen int64
}

func NewSessionStore(client *redis.Client, ttl time.Duration, maxLen int) *SessionStore {
	if maxLen <= 0 {
		maxLen = 50
	}
	return &SessionStore{client: client, ttl: ttl, maxLen: int64(maxLen)}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("chat:%s", sessionID)
}

func (s *SessionStore) Append(ctx context.Context, sessionID string, msg Message) error {
	if !msg.Sender.Valid() {
		return fmt.Errorf("invalid message sender %q", msg.Sender)
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	key := sessionKey(sessionID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -s.maxLen, -1)
	pipe.Expire(ctx, key, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *SessionStore) History(ctx context.Context, sessionID string) ([]Message, error) {
	raw, err := s.client.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	messages := make([]Message, 0, len(raw))
	for _, item := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}
