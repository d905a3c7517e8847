package jobs

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"Food-Inventory/internal/utils/mailing"
	"Food-Inventory/pkg/logger"
)

// Notifier is told about the items a refresh moved into warning or expired.
type Notifier interface {
	Notify(ctx context.Context, transitions []Transition) error
}

// LogNotifier writes one log line per transition.
type LogNotifier struct {
	Logger *logger.Logger
}

func (n LogNotifier) Notify(ctx context.Context, transitions []Transition) error {
	if n.Logger == nil {
		return nil
	}
	for _, t := range transitions {
		n.Logger.InfoFields(ctx, "food item needs attention", map[string]any{
			"food_item_id":    t.ID,
			"name":            t.Name,
			"from":            t.From,
			"to":              t.To,
			"expiration_date": t.ExpirationDate.String(),
		})
	}
	return nil
}

var digestTemplate = template.Must(template.New("digest").Parse(`<h2>Food inventory update</h2>
<p>{{len .}} item(s) need attention.</p>
<table>
<tr><th>Name</th><th>Status</th><th>Expires</th></tr>
{{range .}}<tr><td>{{.Name}}</td><td>{{.To}}</td><td>{{.ExpirationDate}}</td></tr>
{{end}}</table>`))

// MailNotifier emails a digest of the transitions to a single recipient.
type MailNotifier struct {
	sender    mailing.Sender
	recipient string
}

func NewMailNotifier(sender mailing.Sender, recipient string) *MailNotifier {
	return &MailNotifier{sender: sender, recipient: recipient}
}

func (n *MailNotifier) Notify(_ context.Context, transitions []Transition) error {
	if len(transitions) == 0 {
		return nil
	}
	body, err := RenderDigest(transitions)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("%d food item(s) expiring or expired", len(transitions))
	if err := n.sender.SendMail(n.recipient, subject, body); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}

func RenderDigest(transitions []Transition) (string, error) {
	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, transitions); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}

// attention keeps only transitions into warning or expired.
func attention(transitions []Transition) []Transition {
	out := make([]Transition, 0, len(transitions))
	for _, t := range transitions {
		if t.To.NeedsAttention() {
			out = append(out, t)
		}
	}
	return out
}
