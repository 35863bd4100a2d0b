package services

import (
	portsevents "github.com/SscSPs/fin_api/internal/core/ports/events"
	portsrepo "github.com/SscSPs/fin_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_api/internal/core/ports/services"
	"github.com/SscSPs/fin_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portsevents.StatementPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Auth = NewAuthService(repos.UserRepo, container.Token)

	container.Statement = NewStatementService(
		repos.UserRepo,
		repos.StatementRepo,
		WithStatementPublisher(publisher),
		WithPublishTimeout(cfg.EventPublishTimeout),
	)
	// The statement facade already carries the balance calculator.
	container.Balance = container.Statement

	return container
}
