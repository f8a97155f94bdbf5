package proposalRepo

import (
	"tripforge/models"

	"go.mongodb.org/mongo-driver/bson"
)

// visibilityFilter builds the single authorization predicate used by
// every listing path. Elevated roles see all records, admins see their
// company's records, everyone else sees only their own. Soft-deleted
// records are filtered out server-side for all roles.
func visibilityFilter(user models.User) bson.M {
	filter := bson.M{"is_deleted": bson.M{"$ne": true}}

	switch {
	case user.Role.SeesAllProposals():
		// no extra scoping
	case user.Role == models.RoleAdmin:
		filter["company_id"] = user.CompanyID
	default:
		filter["created_by"] = user.Email
	}

	return filter
}
