package service

import (
	"time"

	"github.com/hireai/hireai/internal/dto"
	"github.com/hireai/hireai/internal/model"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// NewCandidateResponse maps a candidate record to its API view. Status is
// always the effective status at the given instant.
func NewCandidateResponse(candidate *model.Candidate, now time.Time) dto.CandidateResponse {
	var view dto.CandidateResponse
	if err := copier.Copy(&view, candidate); err != nil {
		log.Error().Err(err).Str("candidate_id", candidate.ID).Msg("Failed to map candidate response")
	}
	view.Status = string(candidate.EffectiveStatus(now))
	return view
}

func NewCandidateResponses(candidates []model.Candidate, now time.Time) []dto.CandidateResponse {
	views := make([]dto.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		views = append(views, NewCandidateResponse(&candidates[i], now))
	}
	return views
}
