package repository

import (
	"context"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository/dao"
)

var ErrCompetitionNotFound = dao.ErrCompetitionNotFound

type CompetitionDAO interface {
	FindByID(ctx context.Context, id string) (dao.Competition, error)
	FindByIDs(ctx context.Context, ids []string) ([]dao.Competition, error)
	FindAll(ctx context.Context) ([]dao.Competition, error)
	FindByCreator(ctx context.Context, createdBy string) ([]dao.Competition, error)
	Upsert(ctx context.Context, competition dao.Competition) (dao.Competition, error)
}

type CompetitionRepository struct {
	dao CompetitionDAO
}

func NewCompetitionRepository(dao CompetitionDAO) *CompetitionRepository {
	return &CompetitionRepository{
		dao: dao,
	}
}

func (r *CompetitionRepository) FindByID(ctx context.Context, id string) (domain.Competition, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Competition{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CompetitionRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Competition, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CompetitionRepository) FindAll(ctx context.Context) ([]domain.Competition, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CompetitionRepository) FindByCreator(ctx context.Context, createdBy string) ([]domain.Competition, error) {
	found, err := r.dao.FindByCreator(ctx, createdBy)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCreator -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CompetitionRepository) Save(ctx context.Context, competition domain.Competition) (domain.Competition, error) {
	saved, err := r.dao.Upsert(ctx, r.domainToDao(competition))
	if err != nil {
		return domain.Competition{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *CompetitionRepository) domainToDao(c domain.Competition) dao.Competition {
	return dao.Competition{
		ID:                   c.ID,
		Title:                c.Title,
		Description:          c.Description,
		CompetitionType:      string(c.CompetitionType),
		Format:               string(c.Format),
		ParticipationType:    string(c.ParticipationType),
		CreatedBy:            c.CreatedBy,
		RegistrationDeadline: c.RegistrationDeadline,
		SubmissionDeadline:   c.SubmissionDeadline,
		ProofDeadline:        c.ProofDeadline,
		QuizDurationMinutes:  c.QuizDurationMinutes,
		MinTeamSize:          c.MinTeamSize,
		MaxTeamSize:          c.MaxTeamSize,
		TotalMarks:           c.TotalMarks,
		Materials:            c.Materials,
	}
}

func (r *CompetitionRepository) daoToDomain(c dao.Competition) domain.Competition {
	return domain.Competition{
		ID:                   c.ID,
		Title:                c.Title,
		Description:          c.Description,
		CompetitionType:      domain.CompetitionType(c.CompetitionType),
		Format:               domain.Format(c.Format),
		ParticipationType:    domain.ParticipationType(c.ParticipationType),
		CreatedBy:            c.CreatedBy,
		RegistrationDeadline: c.RegistrationDeadline,
		SubmissionDeadline:   c.SubmissionDeadline,
		ProofDeadline:        c.ProofDeadline,
		QuizDurationMinutes:  c.QuizDurationMinutes,
		MinTeamSize:          c.MinTeamSize,
		MaxTeamSize:          c.MaxTeamSize,
		TotalMarks:           c.TotalMarks,
		Materials:            c.Materials,
	}
}

func (r *CompetitionRepository) daosToDomain(competitions []dao.Competition) []domain.Competition {
	result := make([]domain.Competition, len(competitions))
	for i, c := range competitions {
		result[i] = r.daoToDomain(c)
	}
	return result
}
