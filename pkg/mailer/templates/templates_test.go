package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Welcome(t *testing.T) {
	data := WelcomeData{
		FirstName:   "Devang",
		LastName:    "Chauhan",
		Email:       "devang@gmail.com",
		CompanyName: "Acme",
		JoinedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Acme, Devang!", subject)
	assert.Contains(t, text, "Hi Devang Chauhan,")
	assert.Contains(t, text, "01 March 2024")
	assert.Contains(t, html, "mailto:devang@gmail.com")
}

func TestRender_WelcomeDefaults(t *testing.T) {
	subject, text, _, err := Render(Welcome, WelcomeData{FirstName: "John", JoinedAt: time.Now()})
	require.NoError(t, err)

	assert.Equal(t, "Welcome to the team, John!", subject)
	assert.Contains(t, text, "our company")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("missing", nil)
	assert.Error(t, err)
}
