package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusarena/competition-api/internal/domain"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCompetitions_BundledFile(t *testing.T) {
	competitions, err := loadCompetitions("seed.yml")
	require.NoError(t, err)
	require.Len(t, competitions, 4)

	capstone := competitions[1]
	assert.Equal(t, "capstone-build-2026", capstone.ID)
	assert.Equal(t, domain.ParticipationTeam, capstone.ParticipationType)
	require.NotNil(t, capstone.MinTeamSize)
	assert.Equal(t, 2, *capstone.MinTeamSize)
	assert.Equal(t, time.Date(2026, 12, 14, 23, 59, 0, 0, time.UTC), *capstone.SubmissionDeadline)
	assert.Nil(t, capstone.ProofDeadline)
}

func TestLoadCompetitions_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown format",
			content: `
competitions:
  - id: c1
    title: T
    competition_type: INTERNAL
    format: ESSAY
    participation_type: INDIVIDUAL
    created_by: t1
`,
		},
		{
			name: "bad deadline",
			content: `
competitions:
  - id: c1
    title: T
    competition_type: INTERNAL
    format: QUIZ
    participation_type: INDIVIDUAL
    created_by: t1
    registration_deadline: "next friday"
`,
		},
		{
			name: "inverted team sizes",
			content: `
competitions:
  - id: c1
    title: T
    competition_type: INTERNAL
    format: PROJECT
    participation_type: TEAM
    created_by: t1
    min_team_size: 4
    max_team_size: 2
`,
		},
		{
			name: "duplicate id",
			content: `
competitions:
  - {id: c1, title: A, competition_type: INTERNAL, format: QUIZ, participation_type: INDIVIDUAL, created_by: t1}
  - {id: c1, title: B, competition_type: INTERNAL, format: QUIZ, participation_type: INDIVIDUAL, created_by: t1}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadCompetitions(writeSeed(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadCompetitions_NormalisesEnums(t *testing.T) {
	path := writeSeed(t, `
competitions:
  - id: c1
    title: Lowercase
    competition_type: internal
    format: assignment
    participation_type: individual
    created_by: t1
`)

	competitions, err := loadCompetitions(path)
	require.NoError(t, err)
	require.Len(t, competitions, 1)
	assert.Equal(t, domain.FormatAssignment, competitions[0].Format)
	assert.Equal(t, domain.CompetitionInternal, competitions[0].CompetitionType)
}
