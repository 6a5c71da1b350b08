package mailbox

import (
	"fmt"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"go.uber.org/zap"

	"funkdesk/backend/config"
)

// Message is the envelope projection shown on the dashboard mail page.
// Bodies are never fetched here.
type Message struct {
	Subject string    `json:"subject"`
	From    string    `json:"from"`
	Date    time.Time `json:"date"`
}

// Reader lists unseen messages from the configured IMAP mailbox.
type Reader struct {
	cfg    *config.MailConfig
	logger *zap.Logger
}

// NewReader creates a mailbox reader. Configuration is validated lazily so
// deployments without a mailbox can leave the section empty.
func NewReader(cfg *config.MailConfig, logger *zap.Logger) *Reader {
	return &Reader{cfg: cfg, logger: logger}
}

// Enabled reports whether an IMAP host is configured.
func (r *Reader) Enabled() bool {
	return r.cfg.IMAPHost != ""
}

// FetchUnseen connects, searches for unseen messages and returns their
// envelopes. Each call opens a fresh connection; the dashboard polls rarely.
func (r *Reader) FetchUnseen() ([]Message, error) {
	if !r.Enabled() {
		return nil, fmt.Errorf("mailbox: no imap host configured")
	}

	addr := fmt.Sprintf("%s:%d", r.cfg.IMAPHost, r.cfg.IMAPPort)
	c, err := client.DialTLS(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("mailbox: dialing %s: %w", addr, err)
	}
	defer c.Logout()

	if err := c.Login(r.cfg.Username, r.cfg.Password); err != nil {
		return nil, fmt.Errorf("mailbox: login failed: %w", err)
	}

	mbox := r.cfg.Mailbox
	if mbox == "" {
		mbox = "INBOX"
	}
	if _, err := c.Select(mbox, true); err != nil {
		return nil, fmt.Errorf("mailbox: selecting %s: %w", mbox, err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	ids, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("mailbox: searching unseen: %w", err)
	}
	if len(ids) == 0 {
		return []Message{}, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	messages := make(chan *imap.Message, len(ids))
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, []imap.FetchItem{imap.FetchEnvelope}, messages)
	}()

	result := make([]Message, 0, len(ids))
	for msg := range messages {
		if msg.Envelope == nil {
			continue
		}
		from := ""
		if len(msg.Envelope.From) > 0 {
			from = msg.Envelope.From[0].Address()
		}
		result = append(result, Message{
			Subject: msg.Envelope.Subject,
			From:    from,
			Date:    msg.Envelope.Date,
		})
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("mailbox: fetching envelopes: %w", err)
	}

	r.logger.Debug("fetched unseen messages", zap.Int("count", len(result)))
	return result, nil
}
