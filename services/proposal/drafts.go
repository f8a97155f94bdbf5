package proposal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripforge/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	draftKeyPrefix = "proposal:draft:"
	draftTTL       = 2 * time.Hour
)

func draftKey(sessionID string) string {
	return draftKeyPrefix + sessionID
}

// OpenDraft caches a working copy of the proposal and returns the draft
// session ID. Draft edits live only in the cache until an explicit Save.
func (s *DefaultProposalService) OpenDraft(p *models.Proposal) (string, error) {
	if p == nil {
		return "", NewValidationError("proposal is required")
	}

	sessionID := uuid.New().String()
	if err := s.writeDraft(sessionID, p); err != nil {
		return "", err
	}
	return sessionID, nil
}

// GetDraft loads the draft proposal for a session.
func (s *DefaultProposalService) GetDraft(sessionID string) (*models.Proposal, error) {
	ctx := context.Background()
	data, err := s.Cache.Get(ctx, draftKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, NewDraftNotFoundError(sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draft session %s: %w", sessionID, err)
	}

	var p models.Proposal
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to decode draft session %s: %w", sessionID, err)
	}
	return &p, nil
}

// UpdateDraft replaces the draft's working copy and refreshes its TTL.
func (s *DefaultProposalService) UpdateDraft(sessionID string, p *models.Proposal) error {
	if p == nil {
		return NewValidationError("proposal is required")
	}

	ctx := context.Background()
	exists, err := s.Cache.Exists(ctx, draftKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check draft session %s: %w", sessionID, err)
	}
	if exists == 0 {
		return NewDraftNotFoundError(sessionID)
	}
	return s.writeDraft(sessionID, p)
}

// DiscardDraft drops the draft session from the cache.
func (s *DefaultProposalService) DiscardDraft(sessionID string) error {
	ctx := context.Background()
	if err := s.Cache.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to discard draft session %s: %w", sessionID, err)
	}
	return nil
}

func (s *DefaultProposalService) writeDraft(sessionID string, p *models.Proposal) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode draft proposal: %w", err)
	}

	ctx := context.Background()
	if err := s.Cache.Set(ctx, draftKey(sessionID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache draft session %s: %w", sessionID, err)
	}
	return nil
}
