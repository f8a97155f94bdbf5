// File: tripforge/handlers/bundle.go
package handlers

import (
	proposalSvc "tripforge/services/proposal"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Proposal *ProposalHandler
	Pricing  *PricingHandler
	Document *DocumentHandler
}

// NewHandlerBundle wires the handlers over the proposal service and the
// shared cache client.
func NewHandlerBundle(svc proposalSvc.ProposalService, cache *redis.Client) *HandlerBundle {
	return &HandlerBundle{
		Proposal: &ProposalHandler{Service: svc},
		Pricing:  &PricingHandler{},
		Document: &DocumentHandler{Service: svc, Cache: cache},
	}
}
