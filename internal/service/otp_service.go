package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

var (
	ErrOTPNotFound = errors.New("no pending otp for this email")
	ErrOTPExpired  = errors.New("otp has expired")
	ErrOTPMismatch = errors.New("invalid otp")
)

// Mailer delivers the OTP out of band. Delivery is best-effort and fully
// external to the core.
type Mailer interface {
	SendOTP(email, code string) error
}

type otpEntry struct {
	code      string
	expiresAt time.Time
}

// OTPService keeps one pending code per email address, guarded by a mutex
// so concurrent signups never clobber each other.
type OTPService struct {
	mailer Mailer
	ttl    time.Duration

	mu      sync.Mutex
	pending map[string]otpEntry
}

func NewOTPService(mailer Mailer, ttl time.Duration) *OTPService {
	return &OTPService{
		mailer:  mailer,
		ttl:     ttl,
		pending: make(map[string]otpEntry),
	}
}

// Send generates a fresh 4-digit code for the email and mails it. A second
// Send for the same email replaces the previous code.
func (s *OTPService) Send(email string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generating otp: %w", err)
	}

	if err := s.mailer.SendOTP(email, code); err != nil {
		return err
	}

	s.mu.Lock()
	s.pending[email] = otpEntry{code: code, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	return nil
}

// Verify checks the code and consumes it on success.
func (s *OTPService) Verify(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pending[email]
	if !ok {
		return ErrOTPNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.pending, email)
		return ErrOTPExpired
	}
	if entry.code != code {
		return ErrOTPMismatch
	}

	delete(s.pending, email)
	return nil
}

func generateCode() (string, error) {
	// 4 digits, 1000-9999, matching the signup mail format.
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}
