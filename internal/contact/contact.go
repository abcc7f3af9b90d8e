// Package contact handles storefront contact-form submissions. There is no
// outbound mail integration; accepted messages are logged for follow-up.
package contact

import "github.com/rs/zerolog"

// Message is a validated contact-form submission. Binding tags mirror the
// storefront form rules.
type Message struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=5"`
	Message string `json:"message" binding:"required,min=10"`
}

type Service struct {
	log zerolog.Logger
}

func NewService(log zerolog.Logger) *Service {
	return &Service{log: log}
}

func (s *Service) Submit(msg Message) {
	s.log.Info().
		Str("name", msg.Name).
		Str("email", msg.Email).
		Str("subject", msg.Subject).
		Msg("contact message received")
}
