package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"funkdesk/backend/pkg/mailbox"
)

// ── mail business errors ──

var (
	ErrMailDisabled    = errors.New("Das Postfach ist nicht konfiguriert.")
	ErrMailUnavailable = errors.New("Das Postfach ist derzeit nicht erreichbar.")
)

// MailService lists unseen messages from the station mailbox for the
// dashboard mail page.
type MailService interface {
	Unseen(ctx context.Context) ([]mailbox.Message, error)
}

type mailService struct {
	reader *mailbox.Reader
	logger *zap.Logger
}

// NewMailService creates the MailService.
func NewMailService(reader *mailbox.Reader, logger *zap.Logger) MailService {
	return &mailService{reader: reader, logger: logger}
}

func (s *mailService) Unseen(ctx context.Context) ([]mailbox.Message, error) {
	if !s.reader.Enabled() {
		return nil, ErrMailDisabled
	}

	// The IMAP client has no context plumbing; honor cancellation by
	// running the fetch in the background and abandoning it on cancel.
	type result struct {
		messages []mailbox.Message
		err      error
	}
	ch := make(chan result, 1)
	go func() {
		messages, err := s.reader.FetchUnseen()
		ch <- result{messages, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			s.logger.Error("fetching mailbox failed", zap.Error(res.err))
			return nil, ErrMailUnavailable
		}
		return res.messages, nil
	}
}
