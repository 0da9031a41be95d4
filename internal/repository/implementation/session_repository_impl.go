package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pomodoro-bot-be/internal/entity"
	"pomodoro-bot-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// SessionRepositoryImpl keeps one JSON-encoded session per chat in Redis.
// Keys never expire; the dispatcher deletes the row on completion.
type SessionRepositoryImpl struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) contract.SessionRepository {
	return &SessionRepositoryImpl{rdb: rdb}
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("session:%d", chatID)
}

func (r *SessionRepositoryImpl) Get(ctx context.Context, chatID int64) (*entity.Session, error) {
	val, err := r.rdb.Get(ctx, sessionKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session for chat %d: %w", chatID, err)
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) Save(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, sessionKey(session.ChatID), data, 0).Err()
}

func (r *SessionRepositoryImpl) Delete(ctx context.Context, chatID int64) error {
	return r.rdb.Del(ctx, sessionKey(chatID)).Err()
}
