package user

import (
	"context"
	"database/sql"
)

type Repository interface {
	CreateUser(ctx context.Context, u *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uint) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateUser(ctx context.Context, u *User) (*User, error) {
	query := `
	INSERT INTO users (full_name, email, phone_number, address, role, password_hash)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		u.FullName, u.Email, u.PhoneNumber, u.Address, u.Role, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
	SELECT id, full_name, email, phone_number, address, role, password_hash, created_at
	FROM users
	WHERE email = $1
	`

	u := &User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.FullName, &u.Email, &u.PhoneNumber,
		&u.Address, &u.Role, &u.PasswordHash, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *repository) GetUserByID(ctx context.Context, id uint) (*User, error) {
	query := `
	SELECT id, full_name, email, phone_number, address, role, password_hash, created_at
	FROM users
	WHERE id = $1
	`

	u := &User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.FullName, &u.Email, &u.PhoneNumber,
		&u.Address, &u.Role, &u.PasswordHash, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}
