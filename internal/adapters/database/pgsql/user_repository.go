package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/SscSPs/fin_api/internal/apperrors"
	"github.com/SscSPs/fin_api/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_api/internal/core/ports/repositories"
	"github.com/SscSPs/fin_api/internal/models"
	"github.com/SscSPs/fin_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const selectUserColumns = `SELECT user_id, name, email, password_hash, created_at FROM users`

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Name,
		strings.ToLower(modelUser.Email),
		modelUser.PasswordHash,
		modelUser.CreatedAt,
	)
	if err != nil {
		return translateErr("failed to save user", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, selectUserColumns+` WHERE user_id = $1;`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, selectUserColumns+` WHERE email = $1;`, strings.ToLower(email))
}

func (r *PgxUserRepository) findOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelUser.UserID,
		&modelUser.Name,
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateErr("failed to find user", err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}
