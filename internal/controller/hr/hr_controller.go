package hr

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hireai/hireai/internal/dto"
	"github.com/hireai/hireai/internal/repository"
	"github.com/hireai/hireai/internal/service"
	"github.com/rs/zerolog/log"
)

// HRController serves the authenticated HR portal: candidate listing and
// edits, batch screening, scheduling and pipeline advancement.
type HRController struct {
	candidateRepo repository.CandidateRepository
	screeningSvc  service.ScreeningService
	pipelineSvc   service.PipelineService
	authSvc       service.AuthService
}

func NewHRController(
	candidateRepo repository.CandidateRepository,
	screeningSvc service.ScreeningService,
	pipelineSvc service.PipelineService,
	authSvc service.AuthService,
) *HRController {
	return &HRController{
		candidateRepo: candidateRepo,
		screeningSvc:  screeningSvc,
		pipelineSvc:   pipelineSvc,
		authSvc:       authSvc,
	}
}

// Login godoc
// @Summary Log in to the HR portal
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Username and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (ctrl *HRController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.authSvc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid username or password"})
			return
		}
		log.Error().Err(err).Msg("Login failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListCandidates godoc
// @Summary List all candidates
// @Tags hr
// @Produce json
// @Success 200 {array} dto.CandidateResponse
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /candidates [get]
// @Security BearerAuth
func (ctrl *HRController) ListCandidates(c *gin.Context) {
	candidates, err := ctrl.candidateRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list candidates")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list candidates"})
		return
	}
	c.JSON(http.StatusOK, service.NewCandidateResponses(candidates, time.Now()))
}

// GetCandidate godoc
// @Summary Get a candidate by ID
// @Tags hr
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Router /candidates/{id} [get]
// @Security BearerAuth
func (ctrl *HRController) GetCandidate(c *gin.Context) {
	candidate, err := ctrl.candidateRepo.FindByID(c.Param("id"))
	if err != nil {
		ctrl.candidateError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.NewCandidateResponse(candidate, time.Now()))
}

// UpdateCandidate godoc
// @Summary Partially update candidate fields
// @Description Last-writer-wins field edits. Status never changes here; use the pipeline endpoints.
// @Tags hr
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body dto.UpdateCandidateRequest true "Fields to update"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Router /candidates/{id} [patch]
// @Security BearerAuth
func (ctrl *HRController) UpdateCandidate(c *gin.Context) {
	var req dto.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	candidate, err := ctrl.candidateRepo.FindByID(c.Param("id"))
	if err != nil {
		ctrl.candidateError(c, err)
		return
	}

	if req.Name != nil {
		candidate.Name = *req.Name
	}
	if req.Email != nil {
		candidate.Email = *req.Email
	}
	if req.Role != nil {
		candidate.Role = *req.Role
	}
	if req.NoticePeriod != nil {
		candidate.NoticePeriod = req.NoticePeriod
	}
	if req.InterviewDate != nil {
		candidate.InterviewDate = req.InterviewDate
	}
	if req.InterviewTime != nil {
		candidate.InterviewTime = req.InterviewTime
	}
	if req.Points != nil {
		candidate.Points = *req.Points
	}

	if err := ctrl.candidateRepo.Update(candidate); err != nil {
		log.Error().Err(err).Str("candidate_id", candidate.ID).Msg("Failed to update candidate")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update candidate"})
		return
	}
	c.JSON(http.StatusOK, service.NewCandidateResponse(candidate, time.Now()))
}

// BatchScreen godoc
// @Summary Screen a batch of resumes against one job description
// @Description Each file is independent; failures are reported per file and never abort the batch
// @Tags hr
// @Accept json
// @Produce json
// @Param request body dto.BatchScreenRequest true "Job description and resume files"
// @Success 200 {array} dto.BatchScreenResult
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /screening/batch [post]
// @Security BearerAuth
func (ctrl *HRController) BatchScreen(c *gin.Context) {
	var req dto.BatchScreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ctrl.screeningSvc.BatchScreen(c.Request.Context(), req))
}

// ScheduleAptitude godoc
// @Summary Schedule the aptitude test
// @Tags hr
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body dto.ScheduleRequest true "Date and time slot"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /candidates/{id}/schedule-aptitude [post]
// @Security BearerAuth
func (ctrl *HRController) ScheduleAptitude(c *gin.Context) {
	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	candidate, err := ctrl.pipelineSvc.ScheduleAptitude(c.Param("id"), req.Date, req.Time)
	if err != nil {
		ctrl.candidateError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.NewCandidateResponse(candidate, time.Now()))
}

// ScheduleRoundTwo godoc
// @Summary Schedule the round 2 interview
// @Description Requires a passing aptitude score; generates the meeting link
// @Tags hr
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body dto.ScheduleRequest true "Date and time slot"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 409 {object} dto.ErrorResponse "Below pass mark or transition not allowed"
// @Router /candidates/{id}/schedule-round2 [post]
// @Security BearerAuth
func (ctrl *HRController) ScheduleRoundTwo(c *gin.Context) {
	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	candidate, err := ctrl.pipelineSvc.ScheduleRoundTwo(c.Param("id"), req.Date, req.Time)
	if err != nil {
		ctrl.candidateError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.NewCandidateResponse(candidate, time.Now()))
}

// Advance godoc
// @Summary Advance a candidate one pipeline step
// @Description Interview Scheduled to VP Approval, or Offer Signed to Offer Sent
// @Tags hr
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /candidates/{id}/advance [post]
// @Security BearerAuth
func (ctrl *HRController) Advance(c *gin.Context) {
	candidate, err := ctrl.pipelineSvc.Advance(c.Param("id"))
	if err != nil {
		ctrl.candidateError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.NewCandidateResponse(candidate, time.Now()))
}

// Leaderboard godoc
// @Summary Rank candidates by gamification points
// @Tags hr
// @Produce json
// @Success 200 {array} dto.LeaderboardEntry
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /leaderboard [get]
// @Security BearerAuth
func (ctrl *HRController) Leaderboard(c *gin.Context) {
	candidates, err := ctrl.candidateRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build leaderboard")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to build leaderboard"})
		return
	}

	entries := make([]dto.LeaderboardEntry, 0, len(candidates))
	for _, candidate := range candidates {
		entries = append(entries, dto.LeaderboardEntry{
			CandidateID: candidate.ID,
			Name:        candidate.Name,
			Role:        candidate.Role,
			Points:      candidate.Points,
			Badges:      candidate.Badges,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Points > entries[j].Points })
	c.JSON(http.StatusOK, entries)
}

func (ctrl *HRController) candidateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Candidate not found"})
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrNotQualified):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Msg("Candidate operation failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Candidate operation failed"})
	}
}
