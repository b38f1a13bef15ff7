package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"slices"
	"strings"
	"time"
)

// ReviewAll lists external participations in every status.
const ReviewAll = "ALL"

type ExternalParticipationRepository interface {
	Create(ctx context.Context, participation domain.ExternalParticipation) (domain.ExternalParticipation, error)
	UpdateDetails(ctx context.Context, participation domain.ExternalParticipation) (domain.ExternalParticipation, error)
	AppendProof(ctx context.Context, id, reference string, at time.Time) (domain.ExternalParticipation, error)
	Review(ctx context.Context, ids []string, decision domain.ExternalDecision, at time.Time) ([]domain.ExternalParticipation, error)
	FindByID(ctx context.Context, id string) (domain.ExternalParticipation, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.ExternalParticipation, error)
	FindByStatus(ctx context.Context, status domain.ExternalStatus) ([]domain.ExternalParticipation, error)
}

// ExternalParticipationService records participations in competitions held
// outside the platform and runs their admin review.
type ExternalParticipationService struct {
	repo     ExternalParticipationRepository
	notifier Notifier

	// reviewers are notified of every submission waiting for review.
	reviewers []string

	now   func() time.Time
	newID func() string
}

func NewExternalParticipationService(
	repo ExternalParticipationRepository,
	notifier Notifier,
	reviewers []string,
) *ExternalParticipationService {
	if notifier == nil {
		notifier = noopNotifier{}
	}

	return &ExternalParticipationService{
		repo:      repo,
		notifier:  notifier,
		reviewers: reviewers,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func validateExternalDetails(details domain.ExternalDetails) error {
	if strings.TrimSpace(details.Title) == "" {
		return ErrExternalTitleRequired
	}
	if details.TeamSizeMin != nil && details.TeamSizeMax != nil && *details.TeamSizeMin > *details.TeamSizeMax {
		return ErrExternalTeamSize
	}
	if details.StartDate != nil && details.EndDate != nil && details.EndDate.Before(*details.StartDate) {
		return ErrExternalDates
	}

	return nil
}

func (s *ExternalParticipationService) Create(
	ctx context.Context,
	ownerID string,
	details domain.ExternalDetails,
	proofFiles []string,
) (domain.ExternalParticipation, error) {
	if err := validateExternalDetails(details); err != nil {
		return domain.ExternalParticipation{}, err
	}

	participation := domain.NewExternalParticipation(s.newID(), ownerID, details, proofFiles, s.now())

	created, err := s.repo.Create(ctx, participation)
	if err != nil {
		return domain.ExternalParticipation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("external participation submitted",
		zap.String("participation_id", created.ID),
		zap.String("owner_id", ownerID))
	s.notifyReviewers("Submitted", created)

	return created, nil
}

// Update replaces the details of the owner's participation and sends it back
// to review.
func (s *ExternalParticipationService) Update(
	ctx context.Context,
	id string,
	ownerID string,
	details domain.ExternalDetails,
) (domain.ExternalParticipation, error) {
	if err := validateExternalDetails(details); err != nil {
		return domain.ExternalParticipation{}, err
	}

	participation, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return domain.ExternalParticipation{}, err
	}

	participation.Resubmit(details, s.now())

	updated, err := s.repo.UpdateDetails(ctx, participation)
	if err != nil {
		if errors.Is(err, repository.ErrExternalParticipationNotFound) {
			return domain.ExternalParticipation{}, ErrExternalParticipationNotFound
		}

		return domain.ExternalParticipation{}, fmt.Errorf("s.repo.UpdateDetails -> %w", err)
	}

	s.notifyReviewers("Resubmitted", updated)

	return updated, nil
}

// AddProof attaches a blob store reference to the owner's participation.
func (s *ExternalParticipationService) AddProof(ctx context.Context, id, ownerID, reference string) (domain.ExternalParticipation, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return domain.ExternalParticipation{}, ErrProofFileRequired
	}

	if _, err := s.findOwned(ctx, id, ownerID); err != nil {
		return domain.ExternalParticipation{}, err
	}

	updated, err := s.repo.AppendProof(ctx, id, reference, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrExternalParticipationNotFound) {
			return domain.ExternalParticipation{}, ErrExternalParticipationNotFound
		}

		return domain.ExternalParticipation{}, fmt.Errorf("s.repo.AppendProof -> %w", err)
	}

	return updated, nil
}

func (s *ExternalParticipationService) ListMine(ctx context.Context, ownerID string) ([]domain.ExternalParticipation, error) {
	participations, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOwner -> %w", err)
	}

	return participations, nil
}

// Get returns the participation to its owner or to an admin.
func (s *ExternalParticipationService) Get(ctx context.Context, id string, actor domain.Actor) (domain.ExternalParticipation, error) {
	participation, err := s.find(ctx, id)
	if err != nil {
		return domain.ExternalParticipation{}, err
	}
	if !participation.OwnedBy(actor.ID) && !actor.HasRole(domain.RoleAdmin) {
		return domain.ExternalParticipation{}, ErrExternalAccessDenied
	}

	return participation, nil
}

// ListForReview lists participations in status, PENDING when status is empty
// and every status for ReviewAll.
func (s *ExternalParticipationService) ListForReview(ctx context.Context, status string) ([]domain.ExternalParticipation, error) {
	var filter domain.ExternalStatus
	switch {
	case strings.TrimSpace(status) == "":
		filter = domain.ExternalPending
	case strings.EqualFold(strings.TrimSpace(status), ReviewAll):
	default:
		parsed, ok := domain.ParseExternalStatus(status)
		if !ok {
			return nil, ErrInvalidExternalStatus
		}
		filter = parsed
	}

	participations, err := s.repo.FindByStatus(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStatus -> %w", err)
	}

	return participations, nil
}

func (s *ExternalParticipationService) Approve(ctx context.Context, id, note string) (domain.ExternalParticipation, error) {
	return s.reviewOne(ctx, id, domain.Approval(note))
}

func (s *ExternalParticipationService) Reject(ctx context.Context, id, reason string) (domain.ExternalParticipation, error) {
	return s.reviewOne(ctx, id, domain.Rejection(reason))
}

// Rollback puts an approved or rejected participation back to PENDING.
func (s *ExternalParticipationService) Rollback(ctx context.Context, id string) (domain.ExternalParticipation, error) {
	return s.reviewOne(ctx, id, domain.Rollback())
}

// BulkApprove approves every pending participation among ids. Unknown or
// already decided ids are skipped.
func (s *ExternalParticipationService) BulkApprove(ctx context.Context, ids []string, note string) ([]domain.ExternalParticipation, error) {
	return s.reviewMany(ctx, ids, domain.Approval(note))
}

// BulkReject rejects every pending participation among ids. Unknown or
// already decided ids are skipped.
func (s *ExternalParticipationService) BulkReject(ctx context.Context, ids []string, reason string) ([]domain.ExternalParticipation, error) {
	return s.reviewMany(ctx, ids, domain.Rejection(reason))
}

func (s *ExternalParticipationService) reviewOne(
	ctx context.Context,
	id string,
	decision domain.ExternalDecision,
) (domain.ExternalParticipation, error) {
	reviewed, err := s.repo.Review(ctx, []string{id}, decision, s.now())
	if err != nil {
		return domain.ExternalParticipation{}, fmt.Errorf("s.repo.Review -> %w", err)
	}
	if len(reviewed) == 0 {
		if _, err = s.find(ctx, id); err != nil {
			return domain.ExternalParticipation{}, err
		}

		return domain.ExternalParticipation{}, ErrExternalNotReviewable
	}

	s.reviewed(reviewed[0])

	return reviewed[0], nil
}

func (s *ExternalParticipationService) reviewMany(
	ctx context.Context,
	ids []string,
	decision domain.ExternalDecision,
) ([]domain.ExternalParticipation, error) {
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" && !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return nil, ErrExternalIDsRequired
	}

	reviewed, err := s.repo.Review(ctx, unique, decision, s.now())
	if err != nil {
		return nil, fmt.Errorf("s.repo.Review -> %w", err)
	}

	for _, participation := range reviewed {
		s.reviewed(participation)
	}

	return reviewed, nil
}

func (s *ExternalParticipationService) reviewed(participation domain.ExternalParticipation) {
	zap.L().Info("external participation reviewed",
		zap.String("participation_id", participation.ID),
		zap.String("status", string(participation.Status)))
	s.notifier.Notify(domain.ExternalReviewedNotification(participation))
}

func (s *ExternalParticipationService) notifyReviewers(action string, participation domain.ExternalParticipation) {
	for _, reviewerID := range s.reviewers {
		s.notifier.Notify(domain.ExternalSubmittedNotification(reviewerID, action, participation))
	}
}

func (s *ExternalParticipationService) find(ctx context.Context, id string) (domain.ExternalParticipation, error) {
	participation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExternalParticipationNotFound) {
			return domain.ExternalParticipation{}, ErrExternalParticipationNotFound
		}

		return domain.ExternalParticipation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return participation, nil
}

func (s *ExternalParticipationService) findOwned(ctx context.Context, id, ownerID string) (domain.ExternalParticipation, error) {
	participation, err := s.find(ctx, id)
	if err != nil {
		return domain.ExternalParticipation{}, err
	}
	if !participation.OwnedBy(ownerID) {
		return domain.ExternalParticipation{}, ErrExternalAccessDenied
	}

	return participation, nil
}
