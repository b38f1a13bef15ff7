package request

import (
	"errors"
	validation "github.com/go-ozzo/ozzo-validation"
)

var errMarksRequired = errors.New("marksAwarded is required")

type EvaluationRequest struct {
	MarksAwarded *int   `json:"marksAwarded"`
	Feedback     string `json:"feedback"`
}

func (req *EvaluationRequest) Validate() error {
	if req.MarksAwarded == nil {
		return errMarksRequired
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.MarksAwarded, validation.Min(0)),
		validation.Field(&req.Feedback, validation.Length(0, maxDescriptionLength)),
	)
}
