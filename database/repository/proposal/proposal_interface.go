package proposalRepo

import (
	"tripforge/models"
)

// ProposalRepository defines data access for proposal records.
type ProposalRepository interface {
	// ListForUser returns the proposals visible to the user, newest
	// modified first, excluding soft-deleted records. Storage failures
	// degrade to an empty list; callers must treat an empty result as
	// "nothing found or error", not as a confirmed zero count.
	ListForUser(user models.User) ([]models.Proposal, error)

	// Save upserts the full record keyed by proposal ID. Last write
	// wins; there is no optimistic concurrency check.
	Save(p *models.Proposal) error

	// SoftDelete flags the record as deleted via a merge update. The
	// record and its history remain in storage.
	SoftDelete(id string) error

	// GetByID fetches a single record, deleted or not.
	GetByID(id string) (*models.Proposal, error)
}
