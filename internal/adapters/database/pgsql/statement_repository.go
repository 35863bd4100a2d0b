package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/fin_api/internal/apperrors"
	"github.com/SscSPs/fin_api/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_api/internal/core/ports/repositories"
	"github.com/SscSPs/fin_api/internal/models"
	"github.com/SscSPs/fin_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxStatementRepository reads and appends statements. Outside a serialized section it
// queries the pool; inside one it is bound to the section's transaction.
type PgxStatementRepository struct {
	BaseRepository
	db dbtx
	tx pgx.Tx
}

func newPgxStatementRepository(pool *pgxpool.Pool) *PgxStatementRepository {
	return &PgxStatementRepository{BaseRepository: BaseRepository{Pool: pool}, db: pool}
}

// withTx returns a copy of the repository bound to tx.
func (r *PgxStatementRepository) withTx(tx pgx.Tx) *PgxStatementRepository {
	return &PgxStatementRepository{BaseRepository: r.BaseRepository, db: tx, tx: tx}
}

var _ portsrepo.StatementRepositoryWithTx = (*PgxStatementRepository)(nil)

const selectStatementColumns = `
	SELECT statement_id, user_id, sender_id, type, amount, description, created_at
	FROM statements`

func scanStatement(row pgx.Row) (models.Statement, error) {
	var m models.Statement
	err := row.Scan(
		&m.StatementID,
		&m.UserID,
		&m.SenderID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxStatementRepository) ListStatementsByUserID(ctx context.Context, userID string) ([]domain.Statement, error) {
	query := selectStatementColumns + `
	WHERE user_id = $1
	ORDER BY created_at ASC, seq ASC;`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, translateErr("failed to query statements", err)
	}
	defer rows.Close()

	statements := []models.Statement{}
	for rows.Next() {
		m, err := scanStatement(rows)
		if err != nil {
			return nil, translateErr("failed to scan statement row", err)
		}
		statements = append(statements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("error iterating statement rows", err)
	}
	return mapping.ToDomainStatementSlice(statements), nil
}

func (r *PgxStatementRepository) FindStatementForUser(ctx context.Context, userID, statementID string) (*domain.Statement, error) {
	query := selectStatementColumns + `
	WHERE statement_id = $1 AND user_id = $2;`

	m, err := scanStatement(r.db.QueryRow(ctx, query, statementID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateErr("failed to find statement", err)
	}
	stmt := mapping.ToDomainStatement(m)
	return &stmt, nil
}

// SaveStatements inserts the statements in one batch. When not bound to a transaction
// it opens one so the batch is still all-or-nothing.
func (r *PgxStatementRepository) SaveStatements(ctx context.Context, statements ...domain.Statement) error {
	if len(statements) == 0 {
		return nil
	}
	if r.tx != nil {
		return insertStatements(ctx, r.tx, statements)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertStatements(ctx, tx, statements); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertStatements(ctx context.Context, db dbtx, statements []domain.Statement) error {
	query := `
		INSERT INTO statements (statement_id, user_id, sender_id, type, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, s := range statements {
		m := mapping.ToModelStatement(s)
		batch.Queue(query, m.StatementID, m.UserID, m.SenderID, m.Type, m.Amount, m.Description, m.CreatedAt)
	}

	br := db.SendBatch(ctx, batch)
	for range statements {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return translateErr("failed to insert statement", err)
		}
	}
	if err := br.Close(); err != nil {
		return translateErr("failed to close statement batch", err)
	}
	return nil
}

// RunInUserLock opens a transaction, locks the users' rows in ascending id order and runs fn
// with a repository bound to that transaction. fn's writes commit only when it returns nil.
func (r *PgxStatementRepository) RunInUserLock(ctx context.Context, userIDs []string, fn portsrepo.UserLockedFunc) error {
	ids := sortedUnique(userIDs)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	rows, err := tx.Query(ctx, `
		SELECT user_id FROM users
		WHERE user_id = ANY($1)
		ORDER BY user_id
		FOR UPDATE;`, ids)
	if err != nil {
		return translateErr("failed to lock users", err)
	}
	locked, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return translateErr("failed to lock users", err)
	}
	if len(locked) != len(ids) {
		return fmt.Errorf("user %s: %w", firstMissing(ids, locked), apperrors.ErrNotFound)
	}

	if err := fn(ctx, r.withTx(tx)); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func sortedUnique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func firstMissing(want, got []string) string {
	present := make(map[string]struct{}, len(got))
	for _, id := range got {
		present[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := present[id]; !ok {
			return id
		}
	}
	return ""
}
