package postgres

import (
	"context"
	"errors"

	"github.com/hongminglow/contacts-be/internal/models"
	"github.com/hongminglow/contacts-be/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, username, email, password_hash, created_at, COALESCE(avatar, ''), COALESCE(refresh_token, '')`

// CreateUser inserts a new user row and returns it with server-assigned fields.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	INSERT INTO users (username, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING ` + userColumns

	row := s.pool.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// FindUserByID fetches a user by primary key.
func (s *Store) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(s.pool.QueryRow(ctx, query, id))
}

// FindUserByUsernameOrEmail fetches the first user matching the identifier
// as username or email.
func (s *Store) FindUserByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error) {
	const query = `
	SELECT ` + userColumns + ` FROM users
	WHERE username = $1 OR email = $1
	LIMIT 1`
	return scanUser(s.pool.QueryRow(ctx, query, identifier))
}

// FindUserByRefreshToken fetches the user holding the given refresh token.
func (s *Store) FindUserByRefreshToken(ctx context.Context, token string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE refresh_token = $1`
	return scanUser(s.pool.QueryRow(ctx, query, token))
}

// SetRefreshToken replaces the user's stored refresh token.
func (s *Store) SetRefreshToken(ctx context.Context, userID int64, token string) error {
	const query = `UPDATE users SET refresh_token = $2 WHERE id = $1`
	tag, err := s.pool.Exec(ctx, query, userID, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.CreatedAt, &user.Avatar, &user.RefreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
