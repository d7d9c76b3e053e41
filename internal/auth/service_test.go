// internal/auth/service_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users  map[string]*User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User), nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, user *User) error {
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	f.users[user.Email] = user
	return nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, "test-secret", 4, time.Hour), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()

	reg, err := svc.Register(context.Background(), &RegisterRequest{
		Email:     "Ada@Example.com",
		Password:  "password123",
		FirstName: "Ada",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "ada@example.com", reg.User.Email)
	assert.NotEqual(t, "password123", reg.User.PasswordHash)

	login, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	req := &RegisterRequest{Email: "ada@example.com", Password: "password123", FirstName: "Ada"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email: "ada@example.com", Password: "password123", FirstName: "Ada",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	svc, _ := newTestService()

	reg, err := svc.Register(context.Background(), &RegisterRequest{
		Email: "ada@example.com", Password: "password123", FirstName: "Ada",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)

	_, err = svc.ValidateToken(reg.Token + "tampered")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, "test-secret", 4, -time.Minute)

	reg, err := svc.Register(context.Background(), &RegisterRequest{
		Email: "ada@example.com", Password: "password123", FirstName: "Ada",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(reg.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
