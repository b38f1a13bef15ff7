package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository"
)

type CompetitionRepository interface {
	FindByID(ctx context.Context, id string) (domain.Competition, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Competition, error)
	FindAll(ctx context.Context) ([]domain.Competition, error)
	FindByCreator(ctx context.Context, createdBy string) ([]domain.Competition, error)
}

type CompetitionService struct {
	repo CompetitionRepository
}

func NewCompetitionService(repo CompetitionRepository) *CompetitionService {
	return &CompetitionService{
		repo: repo,
	}
}

func (s *CompetitionService) List(ctx context.Context) ([]domain.Competition, error) {
	competitions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return competitions, nil
}

func (s *CompetitionService) Get(ctx context.Context, id string) (domain.Competition, error) {
	return findCompetition(ctx, s.repo, id)
}

func findCompetition(ctx context.Context, repo CompetitionRepository, id string) (domain.Competition, error) {
	competition, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			return domain.Competition{}, ErrCompetitionNotFound
		}

		return domain.Competition{}, fmt.Errorf("repo.FindByID -> %w", err)
	}

	return competition, nil
}
