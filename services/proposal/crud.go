package proposal

import (
	"fmt"
	"time"

	"tripforge/models"

	"github.com/google/uuid"
)

// List returns the proposals visible to the user. The repository
// degrades storage failures to an empty list, so an empty slice may
// mean either no records or an unreachable store.
func (s *DefaultProposalService) List(user models.User) ([]models.Proposal, error) {
	return s.Repo.ListForUser(user)
}

// Save upserts the full proposal record. New proposals get an ID and
// ownership metadata from the caller identity; every save refreshes the
// modification timestamp. Derived pricing totals are never written.
func (s *DefaultProposalService) Save(p *models.Proposal, user models.User) (*models.Proposal, error) {
	if p == nil {
		return nil, NewValidationError("proposal is required")
	}
	if p.ProposalName == "" {
		return nil, NewValidationError("proposal name is required")
	}

	now := time.Now()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedBy == "" {
		p.CreatedBy = user.Email
	}
	if p.CompanyID == "" {
		p.CompanyID = user.CompanyID
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.LastModified = now

	if err := s.Repo.Save(p); err != nil {
		return nil, fmt.Errorf("failed to save proposal: %w", err)
	}
	return p, nil
}

// Delete soft-deletes the proposal. The record stays in storage and
// simply drops out of listings.
func (s *DefaultProposalService) Delete(id string) error {
	if id == "" {
		return NewValidationError("proposal id is required")
	}
	return s.Repo.SoftDelete(id)
}

// Get fetches a single proposal by ID.
func (s *DefaultProposalService) Get(id string) (*models.Proposal, error) {
	if id == "" {
		return nil, NewValidationError("proposal id is required")
	}
	return s.Repo.GetByID(id)
}
