package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// RegistrationRequest carries the team to register. Individual registrations
// send an empty body.
type RegistrationRequest struct {
	TeamID string `json:"teamId"`
}

func (req *RegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TeamID, is.PrintableASCII),
	)
}
