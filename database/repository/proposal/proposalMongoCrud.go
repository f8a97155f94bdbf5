package proposalRepo

import (
	"fmt"
	"time"

	"tripforge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save upserts the full proposal document keyed by its ID. This is a
// whole-record overwrite, not a patch; concurrent saves to the same ID
// race under last-write-wins.
func (r *MongoProposalRepo) Save(p *models.Proposal) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": p.ID}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.coll.ReplaceOne(ctx, filter, p, opts); err != nil {
		return fmt.Errorf("failed to save proposal with id %s: %w", p.ID, err)
	}
	return nil
}

// SoftDelete flags an existing proposal as deleted via a partial $set
// update. The document stays in the collection.
func (r *MongoProposalRepo) SoftDelete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"is_deleted":    true,
		"last_modified": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete proposal with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrProposalNotFound
	}
	return nil
}

// GetByID retrieves a proposal by its unique ID, including soft-deleted
// records.
func (r *MongoProposalRepo) GetByID(id string) (*models.Proposal, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Proposal
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to fetch proposal with id %s: %w", id, err)
	}
	return &p, nil
}
