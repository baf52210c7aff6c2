package domain

// Speaker is a candidate conference speaker submitted for registration.
// RegistrationFee is only meaningful after a successful fee computation.
type Speaker struct {
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	Experience      int        `json:"experience"`
	HasBlog         bool       `json:"has_blog"`
	BlogURL         string     `json:"blog_url"`
	Browser         Browser    `json:"browser"`
	Certifications  []string   `json:"certifications"`
	Employer        string     `json:"employer"`
	Sessions        []*Session `json:"sessions"`
	RegistrationFee int        `json:"registration_fee"`
}

// NewSpeaker returns a new Speaker with the given identity fields. Everything else is set by the caller before registration.
func NewSpeaker(firstName, lastName, email string) *Speaker {
	return &Speaker{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		Certifications: []string{},
		Sessions:       []*Session{},
	}
}

// ApprovedSessions returns the sessions currently flagged as approved, in submission order.
func (s *Speaker) ApprovedSessions() []*Session {
	approved := []*Session{}
	for _, sess := range s.Sessions {
		if sess != nil && sess.Approved {
			approved = append(approved, sess)
		}
	}
	return approved
}
