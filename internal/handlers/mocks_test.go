package handlers_test

import (
	"context"

	"github.com/SscSPs/fin_api/internal/core/domain"
	portssvc "github.com/SscSPs/fin_api/internal/core/ports/services"
	"github.com/SscSPs/fin_api/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) AuthenticateUser(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) ComputeBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockStatementService) CreateStatement(ctx context.Context, userID string, req dto.CreateStatementRequest) (*domain.Statement, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

func (m *MockStatementService) Transfer(ctx context.Context, fromUserID string, req dto.TransferRequest) error {
	args := m.Called(ctx, fromUserID, req)
	return args.Error(0)
}

func (m *MockStatementService) GetStatementOperation(ctx context.Context, userID, statementID string) (*domain.Statement, error) {
	args := m.Called(ctx, userID, statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.UserSvcFacade      = (*MockUserService)(nil)
	_ portssvc.AuthSvcFacade      = (*MockAuthService)(nil)
	_ portssvc.StatementSvcFacade = (*MockStatementService)(nil)
)
