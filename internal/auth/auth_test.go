package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vizzilnt/Protracker1/internal/models"
)

type memUserStore struct {
	users []models.User
	state models.AppState
}

func (m *memUserStore) LoadUsers() []models.User { return append([]models.User(nil), m.users...) }

func (m *memUserStore) SaveUsers(users []models.User) error {
	m.users = append([]models.User(nil), users...)
	return nil
}

func (m *memUserStore) LoadState() models.AppState { return m.state }

func (m *memUserStore) SaveState(state models.AppState) error {
	m.state = state
	return nil
}

type captureSender struct {
	recipient string
	code      string
	fail      error
}

func (c *captureSender) SendOTP(recipient, code string) error {
	if c.fail != nil {
		return c.fail
	}
	c.recipient = recipient
	c.code = code
	return nil
}

func newTestService(t *testing.T) (*Service, *memUserStore, *captureSender) {
	t.Helper()
	store := &memUserStore{}
	sender := &captureSender{}
	svc := NewService(store, sender).WithClock(func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	})
	return svc, store, sender
}

func TestRegisterOpensSession(t *testing.T) {
	svc, store, _ := newTestService(t)

	user, err := svc.Register("Ada", "ada@example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, user.ID, store.state.SessionUserID)

	current, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", current.Email)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register("Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Register("Other", "ada@example.com", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Register("Ada", "ada@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, svc.Logout())

	_, ok := svc.CurrentUser()
	assert.False(t, ok)

	_, err = svc.Login("ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := svc.Login("ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)

	_, ok = svc.CurrentUser()
	assert.True(t, ok)
}

func TestResetFlow(t *testing.T) {
	svc, _, sender := newTestService(t)
	_, err := svc.Register("Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.RequestReset("ada@example.com"))
	assert.Equal(t, "ada@example.com", sender.recipient)
	require.Len(t, sender.code, 6)

	require.NoError(t, svc.ConfirmReset("ada@example.com", sender.code, "newpass"))

	_, err = svc.Login("ada@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("ada@example.com", "newpass")
	assert.NoError(t, err)
}

func TestResetUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	assert.ErrorIs(t, svc.RequestReset("nobody@example.com"), ErrUnknownEmail)
}

func TestResetWrongCode(t *testing.T) {
	svc, _, sender := newTestService(t)
	_, err := svc.Register("Ada", "ada@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, svc.RequestReset("ada@example.com"))

	err = svc.ConfirmReset("ada@example.com", "000000", "newpass")
	if sender.code == "000000" {
		t.Skip("generated code collided with the guess")
	}
	assert.ErrorIs(t, err, ErrBadOTP)
}

func TestResetCodeExpires(t *testing.T) {
	store := &memUserStore{}
	sender := &captureSender{}
	current := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(store, sender).WithClock(func() time.Time { return current })

	_, err := svc.Register("Ada", "ada@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, svc.RequestReset("ada@example.com"))

	current = current.Add(11 * time.Minute)
	assert.ErrorIs(t, svc.ConfirmReset("ada@example.com", sender.code, "newpass"), ErrBadOTP)
}

func TestResetCodeSingleUse(t *testing.T) {
	svc, _, sender := newTestService(t)
	_, err := svc.Register("Ada", "ada@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, svc.RequestReset("ada@example.com"))

	require.NoError(t, svc.ConfirmReset("ada@example.com", sender.code, "newpass"))
	assert.ErrorIs(t, svc.ConfirmReset("ada@example.com", sender.code, "other"), ErrBadOTP)
}

func TestSendFailureDropsCode(t *testing.T) {
	svc, store, sender := newTestService(t)
	_, err := svc.Register("Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	sender.fail = errors.New("smtp down")
	require.Error(t, svc.RequestReset("ada@example.com"))

	assert.Empty(t, store.state.ResetCode)
	assert.Empty(t, store.state.ResetEmail)
}

func TestResetSpansServiceInstances(t *testing.T) {
	// forgot and reset run as separate invocations, each with its own
	// Service; the pending code has to come from the shared store.
	store := &memUserStore{}
	sender := &captureSender{}
	clock := func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	first := NewService(store, sender).WithClock(clock)
	_, err := first.Register("Ada", "ada@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, first.RequestReset("ada@example.com"))

	second := NewService(store, sender).WithClock(clock)
	require.NoError(t, second.ConfirmReset("ada@example.com", sender.code, "newpass"))

	_, err = second.Login("ada@example.com", "newpass")
	assert.NoError(t, err)
	assert.Empty(t, store.state.ResetCode)
}
