package repository

import (
	"context"
	"database/sql"
	"errors"

	"problem-bank/internal/domain"
	"problem-bank/internal/repository/models"
	"problem-bank/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

// CreateUser inserts a new user. A duplicate email surfaces as a conflict.
// The generated uuid is written back onto the domain object.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	user.UUID = util.NewUUID()

	query := `INSERT INTO t_user (uuid, username, password, email, del_flag)
	          VALUES ($1, $2, $3, $4, FALSE)
	          RETURNING id, create_time`

	err := r.db.QueryRowxContext(ctx, query,
		user.UUID, user.Username, user.Password, user.Email,
	).Scan(&user.ID, &user.CreateTime)
	if err != nil {
		return mapDBError(err, "A user with this email already exists")
	}
	return nil
}

// GetUserByEmail retrieves a non-deleted user by email.
// Returns (nil, nil) when no such user exists.
func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user models.User
	query := `SELECT id, uuid, username, password, email, create_time, del_flag
	          FROM t_user WHERE email = $1 AND del_flag = FALSE`

	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, mapDBError(err, "")
	}
	return toDomainUser(&user), nil
}

// GetUserByUUID retrieves a non-deleted user by public uuid.
// Returns (nil, nil) when no such user exists.
func (r *sqlxUserRepository) GetUserByUUID(ctx context.Context, uuid string) (*domain.User, error) {
	var user models.User
	query := `SELECT id, uuid, username, password, email, create_time, del_flag
	          FROM t_user WHERE uuid = $1 AND del_flag = FALSE`

	if err := r.db.GetContext(ctx, &user, query, uuid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, mapDBError(err, "")
	}
	return toDomainUser(&user), nil
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:         m.ID,
		UUID:       m.UUID,
		Username:   m.Username,
		Password:   m.Password,
		Email:      m.Email,
		CreateTime: m.CreateTime,
		DelFlag:    m.DelFlag.Valid && m.DelFlag.Bool,
	}
}
