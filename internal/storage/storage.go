package storage

import (
	"context"
	"errors"
	"time"

	"github.com/hongminglow/contacts-be/internal/models"
)

// ErrNotFound indicates a record does not exist or is not owned by the
// requesting user. The two causes are deliberately indistinguishable.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// NewContact carries the business fields for a contact create or full update.
type NewContact struct {
	Name     string
	Surname  string
	Email    string
	Phone    string
	Birthday time.Time
}

// UserStore captures user persistence operations needed by auth handlers
// and the bearer middleware.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error)
	FindUserByRefreshToken(ctx context.Context, token string) (models.User, error)
	SetRefreshToken(ctx context.Context, userID int64, token string) error
}

// ContactStore captures contact persistence operations. Every method is
// scoped to the owning user's id; a contact is never visible or mutable to
// a non-owning user even when its id is known.
type ContactStore interface {
	ListContacts(ctx context.Context, userID int64, skip, limit int) ([]models.Contact, error)
	GetContact(ctx context.Context, id, userID int64) (models.Contact, error)
	CreateContact(ctx context.Context, input NewContact, userID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, id int64, input NewContact, userID int64) (models.Contact, error)
	DeleteContact(ctx context.Context, id, userID int64) (models.Contact, error)
	FindContactsByName(ctx context.Context, name string, userID int64) ([]models.Contact, error)
	FindContactsBySurname(ctx context.Context, surname string, userID int64) ([]models.Contact, error)
	FindContactByEmail(ctx context.Context, email string, userID int64) (models.Contact, error)
	UpcomingBirthdays(ctx context.Context, userID int64, today time.Time) ([]models.Contact, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store bundles the full persistence surface the server wires together.
type Store interface {
	UserStore
	ContactStore
	Pinger
}
