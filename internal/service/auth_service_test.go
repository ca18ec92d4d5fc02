package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister_ThenLogin(t *testing.T) {
	req := require.New(t)
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{Email: "alice@example.com", Password: "Sup3rSecret"})
	req.NoError(err)
	req.NotEmpty(registered.AccessToken)
	req.Equal("alice@example.com", registered.User.Email)
	req.NotEqual("Sup3rSecret", registered.User.PasswordHash)

	loggedIn, err := svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "Sup3rSecret"})
	req.NoError(err)
	req.Equal(registered.User.ID, loggedIn.User.ID)
	req.NotEmpty(loggedIn.AccessToken)
}

func TestRegister_DuplicateEmail_Fails(t *testing.T) {
	req := require.New(t)
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "alice@example.com", Password: "Sup3rSecret"})
	req.NoError(err)

	_, err = svc.Register(ctx, RegisterInput{Email: "alice@example.com", Password: "0therSecret"})
	req.ErrorIs(err, ErrEmailTaken)
}

func TestLogin_WrongPassword_Fails(t *testing.T) {
	req := require.New(t)
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "alice@example.com", Password: "Sup3rSecret"})
	req.NoError(err)

	_, err = svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wr0ngPassword"})
	req.ErrorIs(err, ErrInvalidCreds)
}

func TestLogin_UnknownEmail_Fails(t *testing.T) {
	req := require.New(t)
	svc := NewAuthService(newFakeUserRepo(), "test-secret")

	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever1A"})
	req.ErrorIs(err, ErrInvalidCreds)
}

func TestPasswordHash_RoundTrip(t *testing.T) {
	req := require.New(t)

	encoded, err := hashPassword("Sup3rSecret")
	req.NoError(err)
	req.True(verifyPassword("Sup3rSecret", encoded))
	req.False(verifyPassword("sup3rsecret", encoded))
	req.False(verifyPassword("Sup3rSecret", "garbage"))
}
