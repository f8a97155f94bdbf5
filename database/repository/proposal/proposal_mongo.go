package proposalRepo

import (
	"context"
	"fmt"
	"time"

	"tripforge/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProposalRepo implements ProposalRepository using MongoDB.
type MongoProposalRepo struct {
	coll *mongo.Collection
}

// NewMongoProposalRepo creates a new instance of ProposalRepository using MongoDB.
func NewMongoProposalRepo() ProposalRepository {
	coll := database.MongoClient.Database("tripforge").Collection("proposals")
	repo := &MongoProposalRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for the listing query paths: company
// scoping for admins and author scoping for everyone else, both sorted
// by last modification.
func (r *MongoProposalRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "last_modified", Value: -1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}, {Key: "last_modified", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
