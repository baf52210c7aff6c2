package services

import (
	"strings"

	"speakerregistration/internal/domain"
)

// SessionScreener approves sessions that do not mention a forbidden topic.
type SessionScreener struct {
	forbiddenTopics []string
}

// NewSessionScreener copies forbiddenTopics; later changes to the slice have no effect.
func NewSessionScreener(forbiddenTopics []string) *SessionScreener {
	topics := make([]string, len(forbiddenTopics))
	copy(topics, forbiddenTopics)
	return &SessionScreener{forbiddenTopics: topics}
}

// Screen sets Approved on every session and reports whether at least one was approved.
// Matching is a case-sensitive substring search over title and description.
// An empty list returns domain.ErrNoSessionsProvided.
func (s *SessionScreener) Screen(sessions []*domain.Session) (bool, error) {
	if len(sessions) == 0 {
		return false, domain.ErrNoSessionsProvided
	}
	anyApproved := false
	for _, sess := range sessions {
		if sess == nil {
			continue
		}
		sess.Approved = !s.mentionsForbiddenTopic(sess)
		anyApproved = anyApproved || sess.Approved
	}
	return anyApproved, nil
}

func (s *SessionScreener) mentionsForbiddenTopic(sess *domain.Session) bool {
	for _, topic := range s.forbiddenTopics {
		if strings.Contains(sess.Title, topic) || strings.Contains(sess.Description, topic) {
			return true
		}
	}
	return false
}
