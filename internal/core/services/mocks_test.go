package services_test

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/fin_api/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_api/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock StatementRepository ---
type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) ListStatementsByUserID(ctx context.Context, userID string) ([]domain.Statement, error) {
	args := m.Called(ctx, userID)
	var statements []domain.Statement
	if args.Get(0) != nil {
		statements = args.Get(0).([]domain.Statement)
	}
	return statements, args.Error(1)
}

func (m *MockStatementRepository) FindStatementForUser(ctx context.Context, userID, statementID string) (*domain.Statement, error) {
	args := m.Called(ctx, userID, statementID)
	var stmt *domain.Statement
	if args.Get(0) != nil {
		stmt = args.Get(0).(*domain.Statement)
	}
	return stmt, args.Error(1)
}

func (m *MockStatementRepository) SaveStatements(ctx context.Context, statements ...domain.Statement) error {
	args := m.Called(ctx, statements)
	return args.Error(0)
}

// RunInUserLock returns the configured error, or runs fn against the mock itself.
func (m *MockStatementRepository) RunInUserLock(ctx context.Context, userIDs []string, fn portsrepo.UserLockedFunc) error {
	args := m.Called(ctx, userIDs)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}

// --- Recording publisher ---
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.StatementRecordedEvent
	err    error
}

func (p *recordingPublisher) PublishStatementRecorded(_ context.Context, events ...domain.StatementRecordedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) recorded() []domain.StatementRecordedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.StatementRecordedEvent(nil), p.events...)
}

// --- Blocking publisher ---
// blockingPublisher holds every publish until its context ends.
type blockingPublisher struct {
	hadDeadline atomic.Bool
}

func (p *blockingPublisher) PublishStatementRecorded(ctx context.Context, _ ...domain.StatementRecordedEvent) error {
	_, ok := ctx.Deadline()
	p.hadDeadline.Store(ok)
	<-ctx.Done()
	return ctx.Err()
}

func (p *blockingPublisher) Close() error { return nil }
