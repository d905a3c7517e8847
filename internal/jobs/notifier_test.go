package jobs

import (
	"context"
	"errors"
	"testing"

	"Food-Inventory/pkg/expiry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to      string
	subject string
	body    string
	err     error
}

func (f *fakeSender) SendMail(to, subject, body string) error {
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

func sampleTransitions() []Transition {
	return []Transition{
		{ID: 1, Name: "Milk <2L>", From: expiry.StatusActive, To: expiry.StatusWarning, ExpirationDate: expiry.MustParseDate("2024-06-12")},
		{ID: 2, Name: "Bread", From: expiry.StatusWarning, To: expiry.StatusExpired, ExpirationDate: expiry.MustParseDate("2024-06-09")},
	}
}

func TestMailNotifierSendsDigest(t *testing.T) {
	sender := &fakeSender{}
	notifier := NewMailNotifier(sender, "kitchen@example.com")

	require.NoError(t, notifier.Notify(context.Background(), sampleTransitions()))
	assert.Equal(t, "kitchen@example.com", sender.to)
	assert.Equal(t, "2 food item(s) expiring or expired", sender.subject)
	assert.Contains(t, sender.body, "Milk &lt;2L&gt;")
	assert.Contains(t, sender.body, "2024-06-09")
	assert.Contains(t, sender.body, "expired")
}

func TestMailNotifierSkipsEmptyDigest(t *testing.T) {
	sender := &fakeSender{}
	require.NoError(t, NewMailNotifier(sender, "kitchen@example.com").Notify(context.Background(), nil))
	assert.Empty(t, sender.to)
}

func TestMailNotifierWrapsSendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("dial tcp: refused")}
	err := NewMailNotifier(sender, "kitchen@example.com").Notify(context.Background(), sampleTransitions())
	assert.ErrorContains(t, err, "send digest")
}

func TestAttentionDropsRecoveredItems(t *testing.T) {
	transitions := append(sampleTransitions(), Transition{ID: 3, From: expiry.StatusExpired, To: expiry.StatusActive})
	assert.Len(t, attention(transitions), 2)
}
