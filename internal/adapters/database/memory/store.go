// Package memory is an array-backed implementation of the user and statement stores.
// It is interchangeable with the PostgreSQL adapter and is what the service tests run against.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/fin_api/internal/apperrors"
	"github.com/SscSPs/fin_api/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_api/internal/core/ports/repositories"
)

// Store keeps users and statements in append-only slices.
type Store struct {
	mu         sync.RWMutex
	users      []domain.User
	statements []domain.Statement

	locksMu   sync.Mutex
	userLocks map[string]*userLock
}

// userLock is a one-slot semaphore shared by every section holding or waiting on a user.
// The entry is dropped once refs reaches zero.
type userLock struct {
	slot chan struct{}
	refs int
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:      make([]domain.User, 0),
		statements: make([]domain.Statement, 0),
		userLocks:  make(map[string]*userLock),
	}
}

var (
	_ portsrepo.UserRepositoryFacade      = (*Store)(nil)
	_ portsrepo.StatementRepositoryWithTx = (*Store)(nil)
)

// NewRepositoryProvider exposes one Store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      store,
		StatementRepo: store,
	}
}

// --- users ---

func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.UserID == user.UserID || strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("user with email %s: %w", user.Email, apperrors.ErrDuplicate)
		}
	}
	s.users = append(s.users, user)
	return nil
}

func (s *Store) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.UserID == userID {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// --- statements ---

func (s *Store) ListStatementsByUserID(ctx context.Context, userID string) ([]domain.Statement, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLocked(userID), nil
}

// listLocked returns the user's statements in commit order. Caller holds s.mu.
func (s *Store) listLocked(userID string) []domain.Statement {
	result := make([]domain.Statement, 0)
	for _, st := range s.statements {
		if st.UserID == userID {
			result = append(result, st)
		}
	}
	return result
}

func (s *Store) FindStatementForUser(ctx context.Context, userID, statementID string) (*domain.Statement, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.statements {
		if st.StatementID == statementID && st.UserID == userID {
			found := st
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// SaveStatements appends all statements under one write lock, so readers see all or none.
func (s *Store) SaveStatements(ctx context.Context, statements ...domain.Statement) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statements = append(s.statements, statements...)
	return nil
}

// --- serialized sections ---

// RunInUserLock acquires the per-user locks in ascending ID order, runs fn against a
// unit of work and appends the staged statements in one step when fn succeeds.
func (s *Store) RunInUserLock(ctx context.Context, userIDs []string, fn portsrepo.UserLockedFunc) error {
	ids := sortedUnique(userIDs)

	for _, id := range ids {
		if _, err := s.FindUserByID(ctx, id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
			}
			return err
		}
	}

	referenced := make([]string, 0, len(ids))
	acquired := make([]*userLock, 0, len(ids))
	defer func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			<-acquired[i].slot
		}
		s.unrefLocks(referenced)
	}()
	for _, id := range ids {
		lock := s.refLock(id)
		referenced = append(referenced, id)
		select {
		case lock.slot <- struct{}{}:
			acquired = append(acquired, lock)
		case <-ctx.Done():
			return fmt.Errorf("waiting for lock on user %s: %w", id, translateCtxErr(ctx.Err()))
		}
	}

	uow := &unitOfWork{store: s}
	if err := fn(ctx, uow); err != nil {
		return err
	}
	if len(uow.pending) == 0 {
		return nil
	}
	return s.SaveStatements(ctx, uow.pending...)
}

func (s *Store) refLock(userID string) *userLock {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &userLock{slot: make(chan struct{}, 1)}
		s.userLocks[userID] = lock
	}
	lock.refs++
	return lock
}

func (s *Store) unrefLocks(userIDs []string) {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	for _, id := range userIDs {
		lock := s.userLocks[id]
		lock.refs--
		if lock.refs == 0 {
			delete(s.userLocks, id)
		}
	}
}

// unitOfWork stages writes until the serialized section commits.
type unitOfWork struct {
	store   *Store
	pending []domain.Statement
}

func (u *unitOfWork) ListStatementsByUserID(ctx context.Context, userID string) ([]domain.Statement, error) {
	committed, err := u.store.ListStatementsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, st := range u.pending {
		if st.UserID == userID {
			committed = append(committed, st)
		}
	}
	return committed, nil
}

func (u *unitOfWork) FindStatementForUser(ctx context.Context, userID, statementID string) (*domain.Statement, error) {
	for _, st := range u.pending {
		if st.StatementID == statementID && st.UserID == userID {
			found := st
			return &found, nil
		}
	}
	return u.store.FindStatementForUser(ctx, userID, statementID)
}

func (u *unitOfWork) SaveStatements(ctx context.Context, statements ...domain.Statement) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	u.pending = append(u.pending, statements...)
	return nil
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

func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return translateCtxErr(err)
	}
	return nil
}

func translateCtxErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", apperrors.ErrTimeout, err)
	}
	return err
}
