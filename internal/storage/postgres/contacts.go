package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/hongminglow/contacts-be/internal/birthday"
	"github.com/hongminglow/contacts-be/internal/models"
	"github.com/hongminglow/contacts-be/internal/storage"
	"github.com/jackc/pgx/v5"
)

const contactColumns = `id, name, surname, email, phone, birthday, created_at, updated_at, user_id`

// ListContacts returns a page of the user's contacts in storage order.
func (s *Store) ListContacts(ctx context.Context, userID int64, skip, limit int) ([]models.Contact, error) {
	const query = `
	SELECT ` + contactColumns + ` FROM contacts
	WHERE user_id = $1
	OFFSET $2 LIMIT $3`
	return s.queryContacts(ctx, query, userID, skip, limit)
}

// GetContact fetches a single contact scoped to its owner. An existing
// contact owned by someone else reports ErrNotFound, same as a missing one.
func (s *Store) GetContact(ctx context.Context, id, userID int64) (models.Contact, error) {
	const query = `
	SELECT ` + contactColumns + ` FROM contacts
	WHERE id = $1 AND user_id = $2`
	return scanContact(s.pool.QueryRow(ctx, query, id, userID))
}

// CreateContact inserts a contact bound to the owning user and returns it
// with the server-assigned id and timestamps. Email and phone uniqueness is
// left to the table constraints.
func (s *Store) CreateContact(ctx context.Context, input storage.NewContact, userID int64) (models.Contact, error) {
	const query = `
	INSERT INTO contacts (name, surname, email, phone, birthday, user_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + contactColumns

	row := s.pool.QueryRow(ctx, query,
		input.Name, input.Surname, input.Email, input.Phone, input.Birthday, userID)
	created, err := scanContact(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Contact{}, storage.ErrAlreadyExists
		}
		return models.Contact{}, err
	}
	return created, nil
}

// UpdateContact overwrites all five business fields of an owned contact and
// refreshes updated_at. Ownership never changes; a miss is ErrNotFound and
// nothing is created.
func (s *Store) UpdateContact(ctx context.Context, id int64, input storage.NewContact, userID int64) (models.Contact, error) {
	const query = `
	UPDATE contacts
	SET name = $1, surname = $2, email = $3, phone = $4, birthday = $5, updated_at = NOW()
	WHERE id = $6 AND user_id = $7
	RETURNING ` + contactColumns

	row := s.pool.QueryRow(ctx, query,
		input.Name, input.Surname, input.Email, input.Phone, input.Birthday, id, userID)
	updated, err := scanContact(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Contact{}, storage.ErrAlreadyExists
		}
		return models.Contact{}, err
	}
	return updated, nil
}

// DeleteContact removes an owned contact permanently and returns the
// pre-deletion snapshot.
func (s *Store) DeleteContact(ctx context.Context, id, userID int64) (models.Contact, error) {
	const query = `
	DELETE FROM contacts
	WHERE id = $1 AND user_id = $2
	RETURNING ` + contactColumns
	return scanContact(s.pool.QueryRow(ctx, query, id, userID))
}

// FindContactsByName returns the user's contacts matching the name exactly,
// case-sensitive as stored.
func (s *Store) FindContactsByName(ctx context.Context, name string, userID int64) ([]models.Contact, error) {
	const query = `
	SELECT ` + contactColumns + ` FROM contacts
	WHERE name = $1 AND user_id = $2`
	return s.queryContacts(ctx, query, name, userID)
}

// FindContactsBySurname returns the user's contacts matching the surname exactly.
func (s *Store) FindContactsBySurname(ctx context.Context, surname string, userID int64) ([]models.Contact, error) {
	const query = `
	SELECT ` + contactColumns + ` FROM contacts
	WHERE surname = $1 AND user_id = $2`
	return s.queryContacts(ctx, query, surname, userID)
}

// FindContactByEmail returns the user's contact with the given email. The
// column is globally unique but the owner filter still applies.
func (s *Store) FindContactByEmail(ctx context.Context, email string, userID int64) (models.Contact, error) {
	const query = `
	SELECT ` + contactColumns + ` FROM contacts
	WHERE email = $1 AND user_id = $2`
	return scanContact(s.pool.QueryRow(ctx, query, email, userID))
}

// UpcomingBirthdays returns the user's contacts whose birthday falls within
// the seven days starting at today, matching month and day only. The
// same-month path compares zero-padded text the way birthdays were
// historically matched; the rollover path runs one query per offset date
// and concatenates results in offset order.
func (s *Store) UpcomingBirthdays(ctx context.Context, userID int64, today time.Time) ([]models.Contact, error) {
	w := birthday.Compute(today)

	if w.SameMonth {
		const query = `
		SELECT ` + contactColumns + ` FROM contacts
		WHERE user_id = $1
		  AND to_char(birthday, 'MM') = $2
		  AND to_char(birthday, 'DD') = ANY($3)`
		return s.queryContacts(ctx, query, userID, w.Month, w.Days)
	}

	const query = `
	SELECT ` + contactColumns + ` FROM contacts
	WHERE user_id = $1
	  AND date_part('month', birthday) = $2
	  AND date_part('day', birthday) = $3`

	var out []models.Contact
	for _, d := range w.Dates {
		batch, err := s.queryContacts(ctx, query, userID, d.Month, d.Day)
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (s *Store) queryContacts(ctx context.Context, query string, args ...any) ([]models.Contact, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, contact)
	}
	return out, rows.Err()
}

func scanContact(row pgx.Row) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone,
		&c.Birthday, &c.CreatedAt, &c.UpdatedAt, &c.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Contact{}, storage.ErrNotFound
		}
		return models.Contact{}, err
	}
	return c, nil
}
