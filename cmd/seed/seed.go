package main

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"

	"github.com/campusarena/competition-api/internal/domain"
)

type seedFile struct {
	Competitions []competitionSeed `mapstructure:"competitions"`
}

// competitionSeed mirrors a catalog entry. Deadlines are quoted RFC 3339 strings.
type competitionSeed struct {
	ID                   string `mapstructure:"id"`
	Title                string `mapstructure:"title"`
	Description          string `mapstructure:"description"`
	CompetitionType      string `mapstructure:"competition_type"`
	Format               string `mapstructure:"format"`
	ParticipationType    string `mapstructure:"participation_type"`
	CreatedBy            string `mapstructure:"created_by"`
	RegistrationDeadline string `mapstructure:"registration_deadline"`
	SubmissionDeadline   string `mapstructure:"submission_deadline"`
	ProofDeadline        string `mapstructure:"proof_deadline"`
	QuizDurationMinutes  *int   `mapstructure:"quiz_duration_minutes"`
	MinTeamSize          *int   `mapstructure:"min_team_size"`
	MaxTeamSize          *int   `mapstructure:"max_team_size"`
	TotalMarks           int    `mapstructure:"total_marks"`
	Materials            string `mapstructure:"materials"`
}

func (s *competitionSeed) Validate() error {
	return validation.ValidateStruct(
		s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.CompetitionType, validation.Required,
			validation.In(string(domain.CompetitionInternal), string(domain.CompetitionExternal))),
		validation.Field(&s.Format, validation.Required,
			validation.In(string(domain.FormatQuiz), string(domain.FormatAssignment), string(domain.FormatProject))),
		validation.Field(&s.ParticipationType, validation.Required,
			validation.In(string(domain.ParticipationIndividual), string(domain.ParticipationTeam))),
		validation.Field(&s.CreatedBy, validation.Required),
		validation.Field(&s.MinTeamSize, validation.Min(1)),
		validation.Field(&s.MaxTeamSize, validation.Min(1)),
		validation.Field(&s.TotalMarks, validation.Min(0)),
	)
}

func (s *competitionSeed) toDomain() (domain.Competition, error) {
	s.CompetitionType = strings.ToUpper(s.CompetitionType)
	s.Format = strings.ToUpper(s.Format)
	s.ParticipationType = strings.ToUpper(s.ParticipationType)

	if err := s.Validate(); err != nil {
		return domain.Competition{}, err
	}

	if s.MinTeamSize != nil && s.MaxTeamSize != nil && *s.MinTeamSize > *s.MaxTeamSize {
		return domain.Competition{}, fmt.Errorf("min_team_size %d exceeds max_team_size %d", *s.MinTeamSize, *s.MaxTeamSize)
	}

	c := domain.Competition{
		ID:                  s.ID,
		Title:               s.Title,
		Description:         s.Description,
		CompetitionType:     domain.CompetitionType(s.CompetitionType),
		Format:              domain.Format(s.Format),
		ParticipationType:   domain.ParticipationType(s.ParticipationType),
		CreatedBy:           s.CreatedBy,
		QuizDurationMinutes: s.QuizDurationMinutes,
		MinTeamSize:         s.MinTeamSize,
		MaxTeamSize:         s.MaxTeamSize,
		TotalMarks:          s.TotalMarks,
		Materials:           s.Materials,
	}

	var err error
	if c.RegistrationDeadline, err = parseDeadline(s.RegistrationDeadline); err != nil {
		return domain.Competition{}, fmt.Errorf("registration_deadline -> %w", err)
	}
	if c.SubmissionDeadline, err = parseDeadline(s.SubmissionDeadline); err != nil {
		return domain.Competition{}, fmt.Errorf("submission_deadline -> %w", err)
	}
	if c.ProofDeadline, err = parseDeadline(s.ProofDeadline); err != nil {
		return domain.Competition{}, fmt.Errorf("proof_deadline -> %w", err)
	}

	return c, nil
}

func parseDeadline(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	t = t.UTC()

	return &t, nil
}

func loadCompetitions(path string) ([]domain.Competition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	var file seedFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	seen := make(map[string]bool, len(file.Competitions))
	competitions := make([]domain.Competition, 0, len(file.Competitions))
	for i := range file.Competitions {
		c, err := file.Competitions[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("competition #%d -> %w", i+1, err)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("competition #%d -> duplicate id %q", i+1, c.ID)
		}
		seen[c.ID] = true

		competitions = append(competitions, c)
	}

	return competitions, nil
}
