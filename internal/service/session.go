package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

// SessionService keeps per-user conversation state in memory. State lives for
// the process lifetime and is never persisted. Handlers run in goroutines, so
// the map is guarded; all mutations touch a single user's entry.
type SessionService struct {
	mu          sync.RWMutex
	sessions    map[int64]*domain.ChatSession
	outputModes map[int64]domain.OutputMode
}

func NewSessionService() *SessionService {
	return &SessionService{
		sessions:    make(map[int64]*domain.ChatSession),
		outputModes: make(map[int64]domain.OutputMode),
	}
}

// Start creates a new session for the user, replacing any existing one.
func (s *SessionService) Start(userID int64, provider domain.Provider, agent domain.AgentConfig) *domain.ChatSession {
	session := &domain.ChatSession{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Provider:  provider,
		Agent:     agent,
	}
	s.mu.Lock()
	s.sessions[userID] = session
	s.mu.Unlock()
	return session
}

// End removes the user's session and reports whether one existed.
func (s *SessionService) End(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[userID]
	delete(s.sessions, userID)
	return ok
}

func (s *SessionService) Has(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[userID]
	return ok
}

func (s *SessionService) Get(userID int64) (*domain.ChatSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	return session, ok
}

// AddMessage appends a message to the user's session. A message is never
// modified or removed once appended. No-op without a session.
func (s *SessionService) AddMessage(userID int64, msg domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[userID]; ok {
		session.Messages = append(session.Messages, msg)
	}
}

// Messages returns a copy of the user's conversation history, oldest first.
func (s *SessionService) Messages(userID int64) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	messages := make([]domain.Message, len(session.Messages))
	copy(messages, session.Messages)
	return messages
}

// FirstUserMessage returns the first user-authored message of the session.
// Used when switching providers so the new backend gets the same opening goal.
func (s *SessionService) FirstUserMessage(userID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	if !ok {
		return "", false
	}
	for _, m := range session.Messages {
		if m.Role == domain.RoleUser {
			return m.Text, true
		}
	}
	return "", false
}

func (s *SessionService) Provider(userID int64) (domain.Provider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	if !ok {
		return "", false
	}
	return session.Provider, true
}

func (s *SessionService) AgentConfig(userID int64) domain.AgentConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.sessions[userID]; ok {
		return session.Agent
	}
	return domain.AgentConfig{Role: domain.AgentChat}
}

// SetOutputMode sets the reply rendering mode for the user. The mode is kept
// outside the session so it survives session restarts.
func (s *SessionService) SetOutputMode(userID int64, mode domain.OutputMode) {
	s.mu.Lock()
	s.outputModes[userID] = mode
	s.mu.Unlock()
}

// OutputMode returns the user's rendering mode, defaulting to text.
func (s *SessionService) OutputMode(userID int64) domain.OutputMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if mode, ok := s.outputModes[userID]; ok {
		return mode
	}
	return domain.OutputText
}
