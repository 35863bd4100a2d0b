package repositories

import (
	"context"
)

// UserLockedFunc runs inside a serialized section. repo reads see every committed statement
// and writes through repo become visible together when the section commits.
type UserLockedFunc func(ctx context.Context, repo StatementRepositoryFacade) error

// StatementTransactor serializes balance-affecting operations per user.
type StatementTransactor interface {
	// RunInUserLock locks every user in userIDs (in ascending ID order), runs fn and
	// commits its writes atomically. Any error from fn discards all of its writes.
	// A user that does not exist yields apperrors.ErrNotFound before fn runs.
	RunInUserLock(ctx context.Context, userIDs []string, fn UserLockedFunc) error
}

// StatementRepositoryWithTx extends StatementRepositoryFacade with serialized write sections
type StatementRepositoryWithTx interface {
	StatementRepositoryFacade
	StatementTransactor
}
