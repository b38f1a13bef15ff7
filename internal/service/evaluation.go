package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository"
	"go.uber.org/zap"
	"time"
)

type EvaluationService struct {
	competitions CompetitionRepository
	submissions  SubmissionRepository
	notifier     Notifier

	now func() time.Time
}

func NewEvaluationService(
	competitions CompetitionRepository,
	submissions SubmissionRepository,
	notifier Notifier,
) *EvaluationService {
	if notifier == nil {
		notifier = noopNotifier{}
	}

	return &EvaluationService{
		competitions: competitions,
		submissions:  submissions,
		notifier:     notifier,
		now:          time.Now,
	}
}

// Evaluate grades a SUBMITTED submission of an internal competition owned by
// evaluatorID. A submission is evaluated at most once.
func (s *EvaluationService) Evaluate(
	ctx context.Context,
	submissionID string,
	marks int,
	feedback string,
	evaluatorID string,
) (domain.SubmissionView, error) {
	submission, err := s.submissions.FindByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return domain.SubmissionView{}, ErrSubmissionNotFound
		}

		return domain.SubmissionView{}, fmt.Errorf("s.submissions.FindByID -> %w", err)
	}
	if submission.Status != domain.SubmissionSubmitted {
		return domain.SubmissionView{}, ErrNotEvaluable
	}

	competition, err := findCompetition(ctx, s.competitions, submission.CompetitionID)
	if err != nil {
		return domain.SubmissionView{}, err
	}
	if !competition.IsInternal() {
		return domain.SubmissionView{}, ErrExternalCompetition
	}
	if !competition.OwnedBy(evaluatorID) {
		return domain.SubmissionView{}, ErrNotCompetitionOwner
	}
	if marks < 0 || (competition.TotalMarks > 0 && marks > competition.TotalMarks) {
		return domain.SubmissionView{}, ErrInvalidMarks
	}

	now := s.now()
	if !submission.Evaluate(marks, feedback, now) {
		return domain.SubmissionView{}, ErrNotEvaluable
	}

	evaluated, err := s.submissions.Evaluate(ctx, submission.ID, *submission.Evaluation)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotEvaluable) {
			return domain.SubmissionView{}, ErrNotEvaluable
		}

		return domain.SubmissionView{}, fmt.Errorf("s.submissions.Evaluate -> %w", err)
	}

	zap.L().Info("submission evaluated",
		zap.String("submission_id", evaluated.ID),
		zap.String("competition_id", competition.ID),
		zap.Int("marks", marks))
	s.notifier.Notify(domain.SubmissionEvaluatedNotification(evaluated, competition))

	return domain.NewSubmissionView(evaluated, &competition, now), nil
}
