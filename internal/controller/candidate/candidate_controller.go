package candidate

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hireai/hireai/internal/dto"
	"github.com/hireai/hireai/internal/repository"
	"github.com/hireai/hireai/internal/service"
	"github.com/rs/zerolog/log"
)

// CandidateController serves the public, candidate-facing endpoints:
// applications, access key verification, live sessions and offer acceptance.
type CandidateController struct {
	screeningSvc service.ScreeningService
	accessSvc    service.AccessService
	proctorSvc   service.ProctorService
	pipelineSvc  service.PipelineService
}

func NewCandidateController(
	screeningSvc service.ScreeningService,
	accessSvc service.AccessService,
	proctorSvc service.ProctorService,
	pipelineSvc service.PipelineService,
) *CandidateController {
	return &CandidateController{
		screeningSvc: screeningSvc,
		accessSvc:    accessSvc,
		proctorSvc:   proctorSvc,
		pipelineSvc:  pipelineSvc,
	}
}

// Apply godoc
// @Summary Submit a job application
// @Description Screens the resume, issues an access key and creates the candidate record
// @Tags candidates
// @Accept json
// @Produce json
// @Param application body dto.ApplyRequest true "Application data"
// @Success 201 {object} dto.ApplyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Screening failed"
// @Router /candidates/apply [post]
func (ctrl *CandidateController) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	candidate, err := ctrl.screeningSvc.Apply(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to process application")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to process application"})
		return
	}

	key := ""
	if candidate.AccessKey != nil {
		key = *candidate.AccessKey
	}
	c.JSON(http.StatusCreated, dto.ApplyResponse{
		Candidate: service.NewCandidateResponse(candidate, time.Now()),
		AccessKey: key,
	})
}

// VerifyAccess godoc
// @Summary Verify an access key
// @Description Checks the key and the candidate's scheduled window; routes to the session or offer view
// @Tags access
// @Accept json
// @Produce json
// @Param request body dto.AccessVerifyRequest true "Access key"
// @Success 200 {object} dto.AccessVerifyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /access/verify [post]
func (ctrl *CandidateController) VerifyAccess(c *gin.Context) {
	var req dto.AccessVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.accessSvc.Verify(req.AccessKey)
	if err != nil {
		log.Error().Err(err).Msg("Access verification failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Access verification failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateSession godoc
// @Summary Open an interview or exam session
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Session type plus access key or target role"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Unknown access key"
// @Router /sessions [post]
func (ctrl *CandidateController) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.proctorSvc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Unknown access key"})
			return
		}
		log.Error().Err(err).Msg("Failed to create session")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// StartSession godoc
// @Summary Report media permissions and start the session
// @Description Media denial keeps the session in setup; a grant moves it through loading into the live phase
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.StartSessionRequest true "Media grant result"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Media denied or session already started"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/start [post]
func (ctrl *CandidateController) StartSession(c *gin.Context) {
	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.proctorSvc.Start(c.Request.Context(), c.Param("id"), *req.MediaGranted)
	if err != nil {
		ctrl.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession godoc
// @Summary Get the current session state
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (ctrl *CandidateController) GetSession(c *gin.Context) {
	resp, err := ctrl.proctorSvc.Get(c.Param("id"))
	if err != nil {
		ctrl.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Answer the current interview question
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.AnswerRequest true "Answer text"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Session is not accepting answers"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/answers [post]
func (ctrl *CandidateController) SubmitAnswer(c *gin.Context) {
	var req dto.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.proctorSvc.Answer(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		ctrl.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReportEvent godoc
// @Summary Deliver a monitoring signal
// @Description Tab switches, focus loss and emergency stops terminate a live proctored session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SessionEventRequest true "Event type"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/events [post]
func (ctrl *CandidateController) ReportEvent(c *gin.Context) {
	var req dto.SessionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.proctorSvc.Event(c.Param("id"), req.Event)
	if err != nil {
		ctrl.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitAptitude godoc
// @Summary Submit the aptitude answer sheet
// @Description Scores the exam and completes the aptitude stage of the pipeline
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.AptitudeSubmitRequest true "Selected options"
// @Success 200 {object} dto.AptitudeResultResponse
// @Failure 400 {object} dto.ErrorResponse "Session is not an active aptitude exam"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/aptitude [post]
func (ctrl *CandidateController) SubmitAptitude(c *gin.Context) {
	var req dto.AptitudeSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.proctorSvc.SubmitAptitude(c.Param("id"), req)
	if err != nil {
		ctrl.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AcceptOffer godoc
// @Summary Accept a sent offer
// @Description Access-key authenticated; rejected once the offer validity window has lapsed
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body dto.AcceptOfferRequest true "Access key"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 409 {object} dto.ErrorResponse "Offer expired or not acceptable"
// @Router /candidates/{id}/offer/accept [post]
func (ctrl *CandidateController) AcceptOffer(c *gin.Context) {
	var req dto.AcceptOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	candidate, err := ctrl.pipelineSvc.AcceptOffer(c.Param("id"), req.AccessKey)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Candidate not found"})
		case errors.Is(err, service.ErrOfferExpired),
			errors.Is(err, service.ErrNoOffer),
			errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Msg("Failed to accept offer")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to accept offer"})
		}
		return
	}
	c.JSON(http.StatusOK, service.NewCandidateResponse(candidate, time.Now()))
}

func (ctrl *CandidateController) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrMediaDenied),
		errors.Is(err, service.ErrSessionClosed),
		errors.Is(err, service.ErrSessionNotSetup),
		errors.Is(err, service.ErrWrongSessionType):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Msg("Session operation failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Session operation failed"})
	}
}
