package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hireai/hireai/internal/accesskey"
	"github.com/hireai/hireai/internal/dto"
	"github.com/hireai/hireai/internal/fingerprint"
	"github.com/hireai/hireai/internal/model"
	"github.com/hireai/hireai/internal/repository"
	"github.com/rs/zerolog/log"
)

// ScreeningService creates candidate records from resumes. Duplicate resumes
// are flagged against the earliest submission but never rejected.
type ScreeningService interface {
	Apply(ctx context.Context, req dto.ApplyRequest) (*model.Candidate, error)
	BatchScreen(ctx context.Context, req dto.BatchScreenRequest) []dto.BatchScreenResult
}

type screeningService struct {
	candidateRepo repository.CandidateRepository
	aiService     AIService
}

func NewScreeningService(candidateRepo repository.CandidateRepository, aiService AIService) ScreeningService {
	return &screeningService{candidateRepo: candidateRepo, aiService: aiService}
}

func (s *screeningService) Apply(ctx context.Context, req dto.ApplyRequest) (*model.Candidate, error) {
	jobDescription := fmt.Sprintf("Candidate applying for the role of %s.", req.Role)
	candidate, err := s.screen(ctx, req.Name, req.Email, req.Role, req.ResumeText, jobDescription)
	if err != nil {
		return nil, err
	}
	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, fmt.Errorf("failed to save candidate: %w", err)
	}
	log.Info().Str("candidate_id", candidate.ID).Bool("duplicate", candidate.IsDuplicate).
		Int("overall_score", candidate.OverallScore).Msg("Application screened")
	return candidate, nil
}

// BatchScreen imports multiple resumes against one job description. Each file
// is independent: a failure produces an error entry in the results and the
// run continues.
func (s *screeningService) BatchScreen(ctx context.Context, req dto.BatchScreenRequest) []dto.BatchScreenResult {
	results := make([]dto.BatchScreenResult, 0, len(req.Files))
	for _, file := range req.Files {
		result := dto.BatchScreenResult{Filename: file.Filename}
		if file.ResumeText == "" {
			result.Error = "empty resume text"
			results = append(results, result)
			continue
		}

		name := nameFromFilename(file.Filename)
		candidate, err := s.screen(ctx, name, "", "Batch Import", file.ResumeText, req.JobDescription)
		if err != nil {
			log.Warn().Err(err).Str("filename", file.Filename).Msg("Batch screening failed for file")
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		if err := s.candidateRepo.Create(candidate); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		result.CandidateID = candidate.ID
		result.Name = candidate.Name
		result.OverallScore = candidate.OverallScore
		result.Summary = candidate.ResumeSummary
		result.IsDuplicate = candidate.IsDuplicate
		results = append(results, result)
	}
	return results
}

func (s *screeningService) screen(ctx context.Context, name, email, role, resumeText, jobDescription string) (*model.Candidate, error) {
	hash := fingerprint.Fingerprint(resumeText)

	candidate := &model.Candidate{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Role:       role,
		Status:     model.StatusScreening,
		ResumeHash: hash,
	}

	if original, err := s.candidateRepo.FindByFingerprint(hash); err == nil {
		candidate.IsDuplicate = true
		candidate.DuplicateOf = &original.Name
		log.Info().Str("resume_hash", hash).Str("original_name", original.Name).Msg("Duplicate resume detected")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("fingerprint lookup failed: %w", err)
	}

	analysis, err := s.aiService.ScreenResume(ctx, resumeText, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("resume screening failed: %w", err)
	}

	candidate.OverallScore = analysis.OverallScore
	candidate.TechnicalScore = analysis.TechnicalScore
	candidate.CommunicationScore = analysis.CommunicationScore
	candidate.ProblemSolvingScore = analysis.ProblemSolvingScore
	candidate.TechnicalReasoning = analysis.TechnicalReasoning
	candidate.CommunicationReasoning = analysis.CommunicationReasoning
	candidate.ProblemSolvingReasoning = analysis.ProblemSolvingReasoning
	candidate.ResumeSummary = analysis.Summary
	candidate.Skills = []model.SkillScore{
		{Name: "Technical", Score: analysis.TechnicalScore, Max: 100},
		{Name: "Communication", Score: analysis.CommunicationScore, Max: 100},
		{Name: "Problem Solving", Score: analysis.ProblemSolvingScore, Max: 100},
	}

	key := accesskey.IssueUnique(s.candidateRepo.AccessKeyInUse)
	candidate.AccessKey = &key

	return candidate, nil
}

func nameFromFilename(filename string) string {
	name := filename
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			name = name[:i]
			break
		}
	}
	if name == "" {
		return "Unknown Candidate"
	}
	return name
}
