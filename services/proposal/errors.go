package proposal

import "fmt"

type ProposalError struct {
	Code    string
	Message string
}

func (e *ProposalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ProposalError{
		Code:    "validationError",
		Message: msg,
	}
}

func NewDraftNotFoundError(sessionID string) error {
	return &ProposalError{
		Code:    "draftNotFound",
		Message: fmt.Sprintf("draft session %s not found or expired", sessionID),
	}
}
