package mail_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/evcharge-admin-api/internal/infrastructure/mail"
)

type captureSender struct {
	raw []string
	err error
}

func (c *captureSender) DialAndSend(msgs ...*gomail.Message) error {
	for _, m := range msgs {
		var buf bytes.Buffer
		if _, err := m.WriteTo(&buf); err != nil {
			return err
		}
		c.raw = append(c.raw, buf.String())
	}
	return c.err
}

func TestSendCPOCredentials_ArmaMensaje(t *testing.T) {
	sender := &captureSender{}
	m := mail.NewMailer(sender, "noreply@evcharge.ph")

	err := m.SendCPOCredentials(context.Background(), "juan@abc.ph", "abc_admin", "TempPasswd")
	require.NoError(t, err)
	require.Len(t, sender.raw, 1)
	raw := sender.raw[0]
	assert.Contains(t, raw, "To: juan@abc.ph")
	assert.Contains(t, raw, "From: noreply@evcharge.ph")
	assert.Contains(t, raw, "abc_admin")
	assert.Contains(t, raw, "TempPasswd")
}

func TestSendCPOCredentials_ErrorSMTP(t *testing.T) {
	boom := errors.New("connection refused")
	m := mail.NewMailer(&captureSender{err: boom}, "noreply@evcharge.ph")

	err := m.SendCPOCredentials(context.Background(), "juan@abc.ph", "abc_admin", "x")
	assert.ErrorIs(t, err, boom)
}

func TestSendCPOCredentials_ContextoCancelado(t *testing.T) {
	sender := &captureSender{}
	m := mail.NewMailer(sender, "noreply@evcharge.ph")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.SendCPOCredentials(ctx, "juan@abc.ph", "abc_admin", "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sender.raw)
}
