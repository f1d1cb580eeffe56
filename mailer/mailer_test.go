package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stressbuster/stressbuster-api/config"
	templates "github.com/stressbuster/stressbuster-api/templates/html"
)

func TestNew(t *testing.T) {
	m := New(&config.Config{})
	assert.IsType(t, Noop{}, m)
	require.NoError(t, m.Send(context.Background(), "jane@example.com", "jane", templates.Email{Subject: "hi"}))

	m = New(&config.Config{SendGridAPIKey: "SG.test", MailFromName: "StressBuster", MailFromEmail: "no-reply@stressbuster.com"})
	sg, ok := m.(*SendGrid)
	require.True(t, ok)
	assert.Equal(t, "no-reply@stressbuster.com", sg.from.Address)
	assert.Equal(t, "StressBuster", sg.from.Name)
}
