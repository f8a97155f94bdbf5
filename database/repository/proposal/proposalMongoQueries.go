package proposalRepo

import (
	"errors"
	"time"

	"tripforge/models"
	"tripforge/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrProposalNotFound is returned when a proposal ID matches no record.
var ErrProposalNotFound = errors.New("proposal not found")

// ListForUser returns all proposals visible to the user, newest
// modified first. Any storage failure is logged and degraded to an
// empty list so the listing surface never hard-fails.
func (r *MongoProposalRepo) ListForUser(user models.User) ([]models.Proposal, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	logger := utils.GetLogger()
	filter := visibilityFilter(user)
	opts := options.Find().SetSort(bson.D{{Key: "last_modified", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		logger.Error("failed to list proposals",
			zap.String("role", string(user.Role)), zap.Error(err))
		return []models.Proposal{}, nil
	}
	defer cursor.Close(ctx)

	proposals := []models.Proposal{}
	for cursor.Next(ctx) {
		var p models.Proposal
		if err := cursor.Decode(&p); err != nil {
			logger.Error("failed to decode proposal", zap.Error(err))
			return []models.Proposal{}, nil
		}
		proposals = append(proposals, p)
	}
	if err := cursor.Err(); err != nil {
		logger.Error("proposal cursor failed", zap.Error(err))
		return []models.Proposal{}, nil
	}
	return proposals, nil
}
