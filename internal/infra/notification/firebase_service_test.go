package notification

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []*messaging.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	s.sent = append(s.sent, message)

	return "projects/test/messages/1", s.err
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	sender := &recordingSender{}
	svc := &firebaseService{client: sender}

	err := svc.SendTopicNotification(context.Background(), "fleet-alerts", "Device offline", "tab-a went silent",
		map[string]string{"materialId": "MAT-001"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "fleet-alerts", msg.Topic)
	assert.Equal(t, "Device offline", msg.Notification.Title)
	assert.Equal(t, "MAT-001", msg.Data["materialId"])
	assert.Equal(t, "high", msg.Android.Priority)
}

func TestFirebaseService_SendTopicNotification_Error(t *testing.T) {
	sender := &recordingSender{err: errors.New("quota exceeded")}
	svc := &firebaseService{client: sender}

	err := svc.SendTopicNotification(context.Background(), "fleet-alerts", "t", "b", nil)
	assert.ErrorContains(t, err, "quota exceeded")
}
