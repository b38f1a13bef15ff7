package repository

import (
	"context"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository/dao"
)

var (
	ErrRegistrationNotFound = dao.ErrRegistrationNotFound
	ErrAlreadyRegistered    = dao.ErrAlreadyRegistered
)

type RegistrationDAO interface {
	Insert(ctx context.Context, registration dao.Registration) (dao.Registration, error)
	EnsureTeamRegistration(ctx context.Context, registration dao.Registration) (bool, error)
	FindActiveByStudent(ctx context.Context, competitionID, studentID string) (dao.Registration, error)
	FindActiveByTeam(ctx context.Context, competitionID, teamID string) (dao.Registration, error)
	FindActiveByStudentID(ctx context.Context, studentID string) ([]dao.Registration, error)
	FindActiveByTeamIDs(ctx context.Context, teamIDs []string) ([]dao.Registration, error)
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	created, err := r.dao.Insert(ctx, registrationDomainToDao(registration))
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return registrationDaoToDomain(created), nil
}

func (r *RegistrationRepository) EnsureTeamRegistration(ctx context.Context, registration domain.Registration) (bool, error) {
	created, err := r.dao.EnsureTeamRegistration(ctx, registrationDomainToDao(registration))
	if err != nil {
		return false, fmt.Errorf("r.dao.EnsureTeamRegistration -> %w", err)
	}

	return created, nil
}

func (r *RegistrationRepository) FindActiveByStudent(ctx context.Context, competitionID, studentID string) (domain.Registration, error) {
	found, err := r.dao.FindActiveByStudent(ctx, competitionID, studentID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindActiveByStudent -> %w", err)
	}

	return registrationDaoToDomain(found), nil
}

func (r *RegistrationRepository) FindActiveByTeam(ctx context.Context, competitionID, teamID string) (domain.Registration, error) {
	found, err := r.dao.FindActiveByTeam(ctx, competitionID, teamID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindActiveByTeam -> %w", err)
	}

	return registrationDaoToDomain(found), nil
}

func (r *RegistrationRepository) FindActiveByStudentID(ctx context.Context, studentID string) ([]domain.Registration, error) {
	found, err := r.dao.FindActiveByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActiveByStudentID -> %w", err)
	}

	return registrationsDaoToDomain(found), nil
}

func (r *RegistrationRepository) FindActiveByTeamIDs(ctx context.Context, teamIDs []string) ([]domain.Registration, error) {
	found, err := r.dao.FindActiveByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActiveByTeamIDs -> %w", err)
	}

	return registrationsDaoToDomain(found), nil
}

func registrationDomainToDao(reg domain.Registration) dao.Registration {
	return dao.Registration{
		ID:               reg.ID,
		CompetitionID:    reg.CompetitionID,
		StudentID:        optionalString(reg.StudentID),
		TeamID:           optionalString(reg.TeamID),
		TeamRegistration: reg.TeamRegistration,
		Status:           string(reg.Status),
		RegisteredAt:     reg.RegisteredAt,
	}
}

func registrationDaoToDomain(reg dao.Registration) domain.Registration {
	return domain.Registration{
		ID:               reg.ID,
		CompetitionID:    reg.CompetitionID,
		StudentID:        stringValue(reg.StudentID),
		TeamID:           stringValue(reg.TeamID),
		TeamRegistration: reg.TeamRegistration,
		Status:           domain.RegistrationStatus(reg.Status),
		RegisteredAt:     reg.RegisteredAt,
	}
}

func registrationsDaoToDomain(registrations []dao.Registration) []domain.Registration {
	result := make([]domain.Registration, len(registrations))
	for i, reg := range registrations {
		result[i] = registrationDaoToDomain(reg)
	}
	return result
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
