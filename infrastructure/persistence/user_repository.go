package persistence

import (
	"context"
	"database/sql"

	"video-gateway/domain/model"
)

// UserRepository resolves principals for the auth middleware. Read-only:
// account creation lives in the identity service.
type UserRepository struct{ db *sql.DB }

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (model.User, error) {
	var user model.User
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_name, name, email FROM users WHERE user_name=$1`, userName)
	if err := row.Scan(&user.ID, &user.UserName, &user.Name, &user.Email); err != nil {
		if err == sql.ErrNoRows {
			return user, model.ErrNotFound
		}
		return user, err
	}
	return user, nil
}
