package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, first_name, last_name, username, email, password_hash, role, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return repo.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt); err != nil {
			zap.L().Error("can't scan user", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating user rows", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, username, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.FirstName, user.LastName, user.Username, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// UpdateCredentials overwrites the password hash and role of an existing user.
func (repo *Repository) UpdateCredentials(ctx context.Context, id int, passwordHash string, role domain.Role) error {
	query := `
		UPDATE users
		SET password_hash = $1, role = $2
		WHERE id = $3
	`
	if _, err := repo.db.Exec(ctx, query, passwordHash, role, id); err != nil {
		zap.L().Error("can't update user credentials", zap.Int("user_id", id), zap.Error(err))
		return err
	}
	return nil
}

// Update overwrites the profile of an existing user. An empty PasswordHash
// keeps the stored one. Returns nil when no user has the given id.
func (repo *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, username = $3, email = $4,
			password_hash = COALESCE(NULLIF($5, ''), password_hash)
		WHERE id = $6
		RETURNING ` + userColumns
	var updated domain.User
	err := repo.db.QueryRow(ctx, query, user.FirstName, user.LastName, user.Username, user.Email, user.PasswordHash, user.ID).
		Scan(&updated.ID, &updated.FirstName, &updated.LastName, &updated.Username, &updated.Email, &updated.PasswordHash, &updated.Role, &updated.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update user", zap.Int("user_id", user.ID), zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (repo *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := repo.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Int("user_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
