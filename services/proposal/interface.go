package proposal

import (
	proposalRepo "tripforge/database/repository/proposal"
	"tripforge/models"

	"github.com/go-redis/redis/v8"
)

// ProposalService exposes proposal persistence and draft editing.
type ProposalService interface {
	// Persistence
	List(user models.User) ([]models.Proposal, error)
	Save(p *models.Proposal, user models.User) (*models.Proposal, error)
	Delete(id string) error
	Get(id string) (*models.Proposal, error)

	// Draft sessions (cache-backed, never touch storage until Save)
	OpenDraft(p *models.Proposal) (string, error)
	GetDraft(sessionID string) (*models.Proposal, error)
	UpdateDraft(sessionID string, p *models.Proposal) error
	DiscardDraft(sessionID string) error
}

// DefaultProposalService is the production implementation.
type DefaultProposalService struct {
	Repo  proposalRepo.ProposalRepository
	Cache *redis.Client
}
