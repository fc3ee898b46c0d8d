package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"renovation_backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories use. pgxmock satisfies
// it too, which is what the repository tests run against.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ErrDuplicateEmail is returned when an insert hits the unique email constraint
var ErrDuplicateEmail = errors.New("email is already registered")

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
}

type userRepository struct {
	db DB

	// SQL text is resolved once from the validated schema name, never
	// formatted per request.
	sqlInsert      string
	sqlSelectEmail string
	sqlSelectID    string
}

// NewUserRepository creates a new UserRepository against the given schema
func NewUserRepository(db DB, schema string) UserRepository {
	return &userRepository{
		db: db,
		sqlInsert: fmt.Sprintf(`INSERT INTO %s.users (email, password_hash, full_name, phone, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`, schema),
		sqlSelectEmail: fmt.Sprintf(`SELECT id, email, password_hash, full_name, phone, created_at, updated_at
            FROM %s.users WHERE email = $1`, schema),
		sqlSelectID: fmt.Sprintf(`SELECT id, email, password_hash, full_name, phone, created_at, updated_at
            FROM %s.users WHERE id = $1`, schema),
	}
}

// Create inserts a new user into the database. A unique constraint violation
// on email is reported as ErrDuplicateEmail.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.QueryRow(ctx, r.sqlInsert,
		user.Email, user.PasswordHash, user.FullName, user.Phone, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRow(ctx, r.sqlSelectEmail, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Phone, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error here, the service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRow(ctx, r.sqlSelectID, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Phone, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}
