package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vizzilnt/Protracker1/internal/email"
	"github.com/Vizzilnt/Protracker1/internal/logger"
	"github.com/Vizzilnt/Protracker1/internal/models"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownEmail       = errors.New("no account for this email")
	ErrBadOTP             = errors.New("wrong or expired code")
)

// UserStore is the slice of persistence the auth service needs.
type UserStore interface {
	LoadUsers() []models.User
	SaveUsers([]models.User) error
	LoadState() models.AppState
	SaveState(models.AppState) error
}

// Service manages the local account list and the active session. Credentials
// are matched as stored; hardening the scheme is explicitly out of scope for
// a single-device tool.
type Service struct {
	store  UserStore
	sender email.Sender
	now    func() time.Time
	newID  func() string
}

func NewService(store UserStore, sender email.Sender) *Service {
	return &Service{
		store:  store,
		sender: sender,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// WithClock replaces the time source, for deterministic tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Register creates an account and opens a session for it.
func (s *Service) Register(name, email, password string) (models.User, error) {
	if strings.TrimSpace(name) == "" {
		return models.User{}, errors.New("name is required")
	}
	users := s.store.LoadUsers()
	for _, u := range users {
		if u.Email == email {
			return models.User{}, ErrEmailTaken
		}
	}

	user := models.User{ID: s.newID(), Name: name, Email: email, Password: password}
	if err := s.store.SaveUsers(append(users, user)); err != nil {
		return models.User{}, err
	}
	return user, s.openSession(user)
}

// Login matches email and password against the stored user list.
func (s *Service) Login(email, password string) (models.User, error) {
	for _, u := range s.store.LoadUsers() {
		if u.Email == email && u.Password == password {
			return u, s.openSession(u)
		}
	}
	return models.User{}, ErrInvalidCredentials
}

func (s *Service) openSession(user models.User) error {
	state := s.store.LoadState()
	state.SessionUserID = user.ID
	state.LastRunAt = s.now().Format(time.RFC3339)
	return s.store.SaveState(state)
}

// CurrentUser resolves the persisted session, if any.
func (s *Service) CurrentUser() (models.User, bool) {
	state := s.store.LoadState()
	if state.SessionUserID == "" {
		return models.User{}, false
	}
	for _, u := range s.store.LoadUsers() {
		if u.ID == state.SessionUserID {
			return u, true
		}
	}
	return models.User{}, false
}

// Logout clears the persisted session.
func (s *Service) Logout() error {
	state := s.store.LoadState()
	state.SessionUserID = ""
	return s.store.SaveState(state)
}

const otpTTL = 10 * time.Minute

// RequestReset issues a one-time code for the account and hands it to the
// mail collaborator. The pending code is persisted so the confirm step can
// run in a later invocation; delivery is a single attempt with no retry
// policy, and a failed send clears the code again.
func (s *Service) RequestReset(addr string) error {
	known := false
	for _, u := range s.store.LoadUsers() {
		if u.Email == addr {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownEmail
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	state := s.store.LoadState()
	state.ResetEmail = addr
	state.ResetCode = code
	state.ResetExpiresAt = s.now().Add(otpTTL).Format(time.RFC3339)
	if err := s.store.SaveState(state); err != nil {
		return err
	}

	if err := s.sender.SendOTP(addr, code); err != nil {
		s.clearReset(state)
		return fmt.Errorf("sending reset code: %w", err)
	}
	logger.Info("reset code sent", zap.String("email", addr))
	return nil
}

// ConfirmReset verifies the persisted code and replaces the account password.
func (s *Service) ConfirmReset(addr, code, newPassword string) error {
	state := s.store.LoadState()
	if state.ResetCode == "" || state.ResetEmail != addr || state.ResetCode != code {
		return ErrBadOTP
	}
	expires, err := time.Parse(time.RFC3339, state.ResetExpiresAt)
	if err != nil || s.now().After(expires) {
		return ErrBadOTP
	}
	if err := s.clearReset(state); err != nil {
		return err
	}

	users := s.store.LoadUsers()
	for i := range users {
		if users[i].Email == addr {
			users[i].Password = newPassword
			return s.store.SaveUsers(users)
		}
	}
	return ErrUnknownEmail
}

func (s *Service) clearReset(state models.AppState) error {
	state.ResetEmail = ""
	state.ResetCode = ""
	state.ResetExpiresAt = ""
	return s.store.SaveState(state)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
