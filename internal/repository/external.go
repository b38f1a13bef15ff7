package repository

import (
	"context"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository/dao"
	"time"
)

var ErrExternalParticipationNotFound = dao.ErrExternalParticipationNotFound

type ExternalParticipationDAO interface {
	Insert(ctx context.Context, participation dao.ExternalParticipation) (dao.ExternalParticipation, error)
	UpdateDetails(ctx context.Context, participation dao.ExternalParticipation) (dao.ExternalParticipation, error)
	AppendProof(ctx context.Context, id, reference string, at time.Time) (dao.ExternalParticipation, error)
	Review(ctx context.Context, ids []string, from []string, to string, note *string, at time.Time) ([]dao.ExternalParticipation, error)
	FindByID(ctx context.Context, id string) (dao.ExternalParticipation, error)
	FindByOwner(ctx context.Context, ownerID string) ([]dao.ExternalParticipation, error)
	FindByStatus(ctx context.Context, status string) ([]dao.ExternalParticipation, error)
}

type ExternalParticipationRepository struct {
	dao ExternalParticipationDAO
}

func NewExternalParticipationRepository(dao ExternalParticipationDAO) *ExternalParticipationRepository {
	return &ExternalParticipationRepository{
		dao: dao,
	}
}

func (r *ExternalParticipationRepository) Create(ctx context.Context, p domain.ExternalParticipation) (domain.ExternalParticipation, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(p))
	if err != nil {
		return domain.ExternalParticipation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ExternalParticipationRepository) UpdateDetails(ctx context.Context, p domain.ExternalParticipation) (domain.ExternalParticipation, error) {
	updated, err := r.dao.UpdateDetails(ctx, r.domainToDao(p))
	if err != nil {
		return domain.ExternalParticipation{}, fmt.Errorf("r.dao.UpdateDetails -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ExternalParticipationRepository) AppendProof(ctx context.Context, id, reference string, at time.Time) (domain.ExternalParticipation, error) {
	updated, err := r.dao.AppendProof(ctx, id, reference, at)
	if err != nil {
		return domain.ExternalParticipation{}, fmt.Errorf("r.dao.AppendProof -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

// Review applies decision to the participations among ids that are in a
// status the decision may leave from, and returns them.
func (r *ExternalParticipationRepository) Review(
	ctx context.Context,
	ids []string,
	decision domain.ExternalDecision,
	at time.Time,
) ([]domain.ExternalParticipation, error) {
	from := make([]string, 0, 2)
	for _, status := range decision.From() {
		from = append(from, string(status))
	}

	var note *string
	if decision.Note != "" {
		note = &decision.Note
	}

	reviewed, err := r.dao.Review(ctx, ids, from, string(decision.Status), note, at)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Review -> %w", err)
	}

	return r.daosToDomain(reviewed), nil
}

func (r *ExternalParticipationRepository) FindByID(ctx context.Context, id string) (domain.ExternalParticipation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.ExternalParticipation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ExternalParticipationRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.ExternalParticipation, error) {
	found, err := r.dao.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOwner -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ExternalParticipationRepository) FindByStatus(ctx context.Context, status domain.ExternalStatus) ([]domain.ExternalParticipation, error) {
	found, err := r.dao.FindByStatus(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatus -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ExternalParticipationRepository) domainToDao(p domain.ExternalParticipation) dao.ExternalParticipation {
	return dao.ExternalParticipation{
		ID:                   p.ID,
		OwnerID:              p.OwnerID,
		Title:                p.Title,
		Category:             p.Category,
		Organizer:            p.Organizer,
		Mode:                 p.Mode,
		Location:             p.Location,
		Description:          p.Description,
		ParticipationType:    string(p.ParticipationType),
		TeamSizeMin:          p.TeamSizeMin,
		TeamSizeMax:          p.TeamSizeMax,
		StartDate:            p.StartDate,
		EndDate:              p.EndDate,
		WebsiteLink:          p.WebsiteLink,
		Result:               p.Result,
		Prizes:               p.Prizes,
		SubmissionNotes:      p.SubmissionNotes,
		DeclarationConfirmed: p.DeclarationConfirmed,
		ProofFiles:           p.ProofFiles,
		Source:               p.Source,
		Status:               string(p.Status),
		AdminNote:            p.AdminNote,
		SubmittedAt:          p.SubmittedAt,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func (r *ExternalParticipationRepository) daoToDomain(p dao.ExternalParticipation) domain.ExternalParticipation {
	proofFiles := []string(p.ProofFiles)
	if proofFiles == nil {
		proofFiles = []string{}
	}

	return domain.ExternalParticipation{
		ExternalDetails: domain.ExternalDetails{
			Title:                p.Title,
			Category:             p.Category,
			Organizer:            p.Organizer,
			Mode:                 p.Mode,
			Location:             p.Location,
			Description:          p.Description,
			ParticipationType:    domain.ParticipationType(p.ParticipationType),
			TeamSizeMin:          p.TeamSizeMin,
			TeamSizeMax:          p.TeamSizeMax,
			StartDate:            p.StartDate,
			EndDate:              p.EndDate,
			WebsiteLink:          p.WebsiteLink,
			Result:               p.Result,
			Prizes:               p.Prizes,
			SubmissionNotes:      p.SubmissionNotes,
			DeclarationConfirmed: p.DeclarationConfirmed,
		},
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		ProofFiles:  proofFiles,
		Source:      p.Source,
		Status:      domain.ExternalStatus(p.Status),
		AdminNote:   p.AdminNote,
		SubmittedAt: p.SubmittedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ExternalParticipationRepository) daosToDomain(participations []dao.ExternalParticipation) []domain.ExternalParticipation {
	result := make([]domain.ExternalParticipation, len(participations))
	for i, p := range participations {
		result[i] = r.daoToDomain(p)
	}

	return result
}
