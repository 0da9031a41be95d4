package memory

import (
	"context"
	"strconv"
	"time"

	"pomodoro-bot-be/internal/entity"
	"pomodoro-bot-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// SessionRepository is an in-process implementation of the session store,
// used in tests and as a fallback when Redis is unreachable. Sessions never
// expire on their own; a flow left hanging is cleaned up by the next /start.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

func (r *SessionRepository) Get(_ context.Context, chatID int64) (*entity.Session, error) {
	if x, found := r.cache.Get(key(chatID)); found {
		session := x.(entity.Session)
		return &session, nil
	}
	return nil, nil
}

func (r *SessionRepository) Save(_ context.Context, session *entity.Session) error {
	r.cache.Set(key(session.ChatID), *session, cache.NoExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, chatID int64) error {
	r.cache.Delete(key(chatID))
	return nil
}

// Has reports whether a session row exists; test helper.
func (r *SessionRepository) Has(chatID int64) bool {
	_, found := r.cache.Get(key(chatID))
	return found
}

var _ contract.SessionRepository = (*SessionRepository)(nil)
