package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/umputun/eduflow/pkg/domain"
)

// LocalFailureText is appended when answering blew up inside the session
const LocalFailureText = "Sorry, I couldn't retrieve results right now."

// session errors
var (
	ErrEmpty    = errors.New("empty question")
	ErrBusy     = errors.New("answer in progress")
	ErrClosed   = errors.New("session closed")
	ErrNotFound = errors.New("session not found")
)

// Greeting is the first assistant message of a session
func Greeting(subject string) string {
	return fmt.Sprintf("Hi! I'm your AI tutor for %s. Ask me anything about this video.", subject)
}

// Session is the transcript of one open assistant panel. At most one question
// is answered at a time.
type Session struct {
	ID      string
	ItemID  string
	Subject string

	answerer Answerer

	mu       sync.Mutex
	messages []domain.Message
	busy     bool
	closed   bool
}

func newSession(id, itemID, subject string, answerer Answerer) *Session {
	return &Session{
		ID:       id,
		ItemID:   itemID,
		Subject:  subject,
		answerer: answerer,
		messages: []domain.Message{{Role: domain.RoleAssistant, Text: Greeting(subject), Sources: []domain.Citation{}}},
	}
}

// Send appends the question, asks the answerer and appends its reply. It blocks until the
// reply is ready. If the session was closed meanwhile the reply is dropped and ErrClosed returned.
func (s *Session) Send(ctx context.Context, text string) (domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, ErrEmpty
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.Message{}, ErrClosed
	}
	if s.busy {
		s.mu.Unlock()
		return domain.Message{}, ErrBusy
	}
	s.busy = true
	s.messages = append(s.messages, domain.Message{Role: domain.RoleUser, Text: text})
	s.mu.Unlock()

	reply := s.ask(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if s.closed {
		log.Printf("[DEBUG] session %s closed, reply discarded", s.ID)
		return domain.Message{}, ErrClosed
	}
	s.messages = append(s.messages, reply)
	return reply, nil
}

func (s *Session) ask(ctx context.Context, question string) (reply domain.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WARN] session %s answerer panicked: %v", s.ID, r)
			reply = domain.Message{Role: domain.RoleAssistant, Text: LocalFailureText, Sources: []domain.Citation{}}
		}
	}()

	answer := s.answerer.Answer(ctx, question, s.Subject)
	sources := answer.Sources
	if sources == nil {
		sources = []domain.Citation{}
	}
	return domain.Message{Role: domain.RoleAssistant, Text: answer.Text, Sources: sources}
}

// Messages returns a copy of the transcript
func (s *Session) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Message(nil), s.messages...)
}

// Busy reports whether a question is being answered
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Close discards the session, an in-flight answer is not canceled but dropped on arrival
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.messages = nil
}

// Manager keeps open sessions in memory
type Manager struct {
	answerer Answerer

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager makes a session manager on top of answerer
func NewManager(answerer Answerer) *Manager {
	return &Manager{answerer: answerer, sessions: map[string]*Session{}}
}

// Open starts a session for the item, seeded with the greeting
func (m *Manager) Open(itemID, subject string) *Session {
	s := newSession(uuid.NewString(), itemID, subject, m.answerer)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	log.Printf("[DEBUG] chat session %s opened for item %s", s.ID, itemID)
	return s
}

// Get returns an open session
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Close closes and forgets the session
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	s.Close()
	log.Printf("[DEBUG] chat session %s closed", id)
	return nil
}

// Len returns the number of open sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
