package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/hireai/hireai/internal/dto"
	"github.com/hireai/hireai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accessKeyShape = regexp.MustCompile(`^[A-Z2-9]{4}-[A-Z2-9]{4}$`)

func TestApplyCreatesScreenedCandidate(t *testing.T) {
	repo := newFakeCandidateRepo()
	svc := NewScreeningService(repo, &fakeAIService{})

	candidate, err := svc.Apply(context.Background(), dto.ApplyRequest{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Role:       "Backend Engineer",
		ResumeText: "Ten years of Go and distributed systems.",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusScreening, candidate.Status)
	assert.Equal(t, 80, candidate.OverallScore)
	assert.NotEmpty(t, candidate.ResumeHash)
	assert.False(t, candidate.IsDuplicate)
	require.NotNil(t, candidate.AccessKey)
	assert.Regexp(t, accessKeyShape, *candidate.AccessKey)
	assert.Len(t, candidate.Skills, 3)

	stored, err := repo.FindByID(candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, candidate.ResumeHash, stored.ResumeHash)
}

func TestApplyFlagsDuplicateButNeverBlocks(t *testing.T) {
	repo := newFakeCandidateRepo()
	svc := NewScreeningService(repo, &fakeAIService{})
	resume := "Same resume text submitted twice."

	first, err := svc.Apply(context.Background(), dto.ApplyRequest{
		Name: "First", Email: "first@example.com", Role: "QA", ResumeText: resume,
	})
	require.NoError(t, err)
	assert.False(t, first.IsDuplicate)

	second, err := svc.Apply(context.Background(), dto.ApplyRequest{
		Name: "Second", Email: "second@example.com", Role: "QA", ResumeText: resume,
	})
	require.NoError(t, err)

	assert.True(t, second.IsDuplicate)
	require.NotNil(t, second.DuplicateOf)
	assert.Equal(t, first.Name, *second.DuplicateOf)
	assert.Equal(t, first.ResumeHash, second.ResumeHash)
	// Both records exist; duplicates are flagged, never rejected.
	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestApplyWhitespaceVariantIsStillDuplicate(t *testing.T) {
	repo := newFakeCandidateRepo()
	svc := NewScreeningService(repo, &fakeAIService{})

	_, err := svc.Apply(context.Background(), dto.ApplyRequest{
		Name: "First", Email: "a@example.com", Role: "QA", ResumeText: "Go  Engineer",
	})
	require.NoError(t, err)

	second, err := svc.Apply(context.Background(), dto.ApplyRequest{
		Name: "Second", Email: "b@example.com", Role: "QA", ResumeText: "  go engineer\n",
	})
	require.NoError(t, err)
	assert.True(t, second.IsDuplicate)
}

func TestApplyPropagatesScreeningFailure(t *testing.T) {
	repo := newFakeCandidateRepo()
	svc := NewScreeningService(repo, &fakeAIService{
		screenFn: func(string, string) (*model.ScreeningAnalysis, error) {
			return nil, errors.New("model unavailable")
		},
	})

	_, err := svc.Apply(context.Background(), dto.ApplyRequest{
		Name: "Ada", Email: "ada@example.com", Role: "QA", ResumeText: "text",
	})
	require.Error(t, err)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBatchScreenContinuesPastFailures(t *testing.T) {
	repo := newFakeCandidateRepo()
	calls := 0
	svc := NewScreeningService(repo, &fakeAIService{
		screenFn: func(resumeText, _ string) (*model.ScreeningAnalysis, error) {
			calls++
			if resumeText == "broken" {
				return nil, errors.New("model unavailable")
			}
			return &model.ScreeningAnalysis{OverallScore: 66, Summary: "ok"}, nil
		},
	})

	results := svc.BatchScreen(context.Background(), dto.BatchScreenRequest{
		JobDescription: "Senior Go engineer",
		Files: []dto.BatchScreenFile{
			{Filename: "good.pdf", ResumeText: "fine resume"},
			{Filename: "bad.pdf", ResumeText: "broken"},
			{Filename: "empty.pdf", ResumeText: ""},
			{Filename: "other.pdf", ResumeText: "another fine resume"},
		},
	})

	require.Len(t, results, 4)
	assert.Empty(t, results[0].Error)
	assert.Equal(t, "good", results[0].Name)
	assert.NotEmpty(t, results[1].Error)
	assert.Empty(t, results[1].CandidateID)
	assert.Equal(t, "empty resume text", results[2].Error)
	assert.Empty(t, results[3].Error)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
