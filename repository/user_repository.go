package repository

import (
	"context"
	"errors"
	"strings"

	"clanPortal/internal/store"
	"clanPortal/models"
)

const usersCollection = "users"

var (
	// ErrMissingField reports a signup with an empty username or password.
	ErrMissingField = errors.New("username and password required")
	// ErrUsernameTaken reports a case-insensitive username collision.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials reports a failed exact-match login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRole reports a role outside the closed enum.
	ErrInvalidRole = errors.New("invalid role")
)

// UserRepository stores accounts in the `users` collection.
//
// Passwords are persisted and compared as plain text to stay interoperable
// with the existing data files. Known defect, kept deliberately.
type UserRepository struct {
	users *store.Collection
}

func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{users: s.Collection(usersCollection)}
}

// UsernameExists reports whether any stored account has the given username,
// ignoring case.
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	users, err := store.Load[models.User](r.users)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

// Create registers a new account. Role defaults to models.DefaultRole when
// empty. The uniqueness check ignores case, and it runs together with the
// append under the collection's write lock so two concurrent signups for the
// same name cannot both win.
func (r *UserRepository) Create(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if username == "" || password == "" {
		return nil, ErrMissingField
	}
	if role == "" {
		role = models.DefaultRole
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	u := models.User{Username: username, Password: password, Role: role}
	err := store.Update(r.users, func(users []models.User) ([]models.User, error) {
		for _, existing := range users {
			if strings.EqualFold(existing.Username, username) {
				return nil, ErrUsernameTaken
			}
		}
		return append(users, u), nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Authenticate returns the account matching both fields exactly. Unlike the
// signup uniqueness check, the username comparison here is case-sensitive;
// the asymmetry is inherited behavior and preserved on purpose.
func (r *UserRepository) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	users, err := store.Load[models.User](r.users)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, ErrInvalidCredentials
}
