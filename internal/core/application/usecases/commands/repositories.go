// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Commands are validated on construction; handlers call the remote API, the
// workflow engine or the local database inside a unit of work.
package commands

import (
	"context"

	"sellerdesk/internal/core/application/workflow"
	"sellerdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// TransitionRepoFactory provides access to the transition journal within a transaction.
	TransitionRepoFactory interface {
		TransitionRepository() ports.TransitionRepository
	}

	// SessionUoW manages transactions for session operations.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	// SessionUoWFactory creates new session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}

	// JournalUoW manages transactions for transition journal writes.
	JournalUoW interface {
		TxManager
		TransitionRepoFactory
	}

	// JournalUoWFactory creates new journal unit of work instances.
	JournalUoWFactory interface {
		Create() JournalUoW
	}
)

// StatusAdvancer moves a cached order to its next status.
type StatusAdvancer interface {
	AdvanceStatus(ctx context.Context, orderID string) (workflow.Advancement, error)
}
