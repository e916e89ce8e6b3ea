package session

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRole = errors.New("invalid role")
	ErrEmptyToken  = errors.New("empty session token")
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

var roleHierarchy = map[Role]int{
	RoleStudent: 1,
	RoleTrainer: 2,
	RoleAdmin:   3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleHierarchy[r]
	return ok
}

// AtLeast reports whether r ranks at or above minRole.
func (r Role) AtLeast(minRole Role) bool {
	level, ok := roleHierarchy[r]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}

// NewRole maps marketplace role names; "user" and an empty role are students.
func NewRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "user", "student", "intern":
		return RoleStudent, nil
	case "trainer":
		return RoleTrainer, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

// Session is the explicit replacement for the browser's stored token and cached user.
// It is created once per request by the auth middleware and passed down explicitly.
type Session struct {
	userID string
	role   Role
	token  string
}

func New(userID string, role Role, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrEmptyToken
	}
	return Session{userID: userID, role: role, token: token}, nil
}

func (s Session) UserID() string { return s.userID }
func (s Session) Role() Role     { return s.role }

// BearerToken is the only read access to the raw token.
func (s Session) BearerToken() string { return s.token }
