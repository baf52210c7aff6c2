package domain

// Session is a talk proposed by a speaker. Approved is decided during session screening.
type Session struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Approved    bool   `json:"approved"`
}

// NewSession returns a new, not yet approved Session.
func NewSession(title, description string) *Session {
	return &Session{
		Title:       title,
		Description: description,
	}
}
