package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"strings"
)

const (
	maxDescriptionLength = 2000
	maxQuizAnswers       = 500
)

type AssignmentSubmissionRequest struct {
	// File is the reference returned by the blob store.
	File        string `json:"file"`
	Description string `json:"description"`
}

func (req *AssignmentSubmissionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.File, validation.Required.Error("assignment file is required")),
		validation.Field(&req.Description, validation.Length(0, maxDescriptionLength)),
	)
}

type ProjectSubmissionRequest struct {
	// RepoLink is stored as given. Any non-blank reference is accepted, SSH
	// remotes included.
	RepoLink    string `json:"repoLink"`
	Description string `json:"description"`
}

func (req *ProjectSubmissionRequest) Validate() error {
	req.RepoLink = strings.TrimSpace(req.RepoLink)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.RepoLink, validation.Required.Error("repository link is required")),
		validation.Field(&req.Description, validation.Length(0, maxDescriptionLength)),
	)
}

type QuizSubmissionRequest struct {
	Answers []string `json:"answers"`
}

func (req *QuizSubmissionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Answers, validation.Length(0, maxQuizAnswers)),
	)
}
