package service

import "errors"

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindForbidden
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Error is a business rule violation reported to the caller verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain, or 0 when err
// does not carry one.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return 0
}

var (
	ErrCompetitionNotFound  = newError(KindNotFound, "Competition not found")
	ErrTeamNotFound         = newError(KindNotFound, "Team not found")
	ErrSubmissionNotFound   = newError(KindNotFound, "Submission not found")
	ErrNotificationNotFound = newError(KindNotFound, "Notification not found")
)

// Registration.
var (
	ErrRegistrationDeadlinePassed = newError(KindConflict, "Registration deadline passed")
	ErrAlreadyRegistered          = newError(KindConflict, "Already registered")
	ErrTeamNotAllowed             = newError(KindConflict, "Team not allowed for individual competition")
	ErrTeamRequired               = newError(KindValidation, "Team is required for team competition")
	ErrTeamNotInCompetition       = newError(KindConflict, "Team does not belong to this competition")
	ErrOnlyLeaderCanRegister      = newError(KindForbidden, "Only team leader can register")
	ErrTeamNotActive              = newError(KindConflict, "Team is not active")
	ErrTeamAlreadyRegistered      = newError(KindConflict, "Team already registered")
)

// Team formation.
var (
	ErrNotTeamCompetition   = newError(KindConflict, "Competition does not accept teams")
	ErrTeamNameRequired     = newError(KindValidation, "Team name is required")
	ErrStudentAlreadyInTeam = newError(KindConflict, "Student is already in a team for this competition")
	ErrTeamFull             = newError(KindConflict, "Team exceeds maximum allowed size")
	ErrNotInvited           = newError(KindForbidden, "Student was not invited")
)

// Submission.
var (
	ErrSubmissionNotOpen        = newError(KindConflict, "Submission not open yet")
	ErrSubmissionDeadlinePassed = newError(KindConflict, "Submission deadline passed")
	ErrInvalidSubmissionType    = newError(KindConflict, "Invalid submission type")
	ErrNotTeamLeader            = newError(KindForbidden, "Student is not a team leader for this competition")
	ErrTeamNotRegistered        = newError(KindConflict, "Team not registered")
	ErrStudentNotRegistered     = newError(KindConflict, "Student not registered for this competition")
	ErrQuizAlreadySubmitted     = newError(KindConflict, "Quiz can only be submitted once")
	ErrSubmissionEvaluated      = newError(KindConflict, "Submission already evaluated")
	ErrAssignmentFileRequired   = newError(KindValidation, "Assignment file is required")
	ErrRepoLinkRequired         = newError(KindValidation, "Repository link is required")
	ErrSubmissionAccessDenied   = newError(KindForbidden, "Not allowed to view this submission")
	ErrCompetitionNotOwned      = newError(KindForbidden, "Teacher can only view submissions from competitions they created")
)

// Evaluation.
var (
	ErrNotEvaluable        = newError(KindConflict, "Submission cannot be evaluated in current status")
	ErrExternalCompetition = newError(KindConflict, "Only internal competition submissions can be evaluated")
	ErrNotCompetitionOwner = newError(KindForbidden, "Teacher can only evaluate submissions from competitions they created")
	ErrInvalidMarks        = newError(KindValidation, "Marks must be between 0 and the competition's total marks")
)

var ErrNotificationAccessDenied = newError(KindForbidden, "Notification belongs to another user")

// External participation.
var (
	ErrExternalParticipationNotFound = newError(KindNotFound, "External participation not found")
	ErrExternalAccessDenied          = newError(KindForbidden, "External participation belongs to another student")
	ErrExternalTitleRequired         = newError(KindValidation, "Title is required")
	ErrExternalTeamSize              = newError(KindValidation, "Minimum team size exceeds maximum team size")
	ErrExternalDates                 = newError(KindValidation, "End date is before start date")
	ErrProofFileRequired             = newError(KindValidation, "Proof file is required")
	ErrInvalidExternalStatus         = newError(KindValidation, "Unknown external participation status")
	ErrExternalIDsRequired           = newError(KindValidation, "ids required")
	ErrExternalNotReviewable         = newError(KindConflict, "External participation cannot be reviewed in current status")
)
