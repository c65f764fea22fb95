package vp

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hireai/hireai/internal/dto"
	"github.com/hireai/hireai/internal/middleware"
	"github.com/hireai/hireai/internal/model"
	"github.com/hireai/hireai/internal/repository"
	"github.com/hireai/hireai/internal/service"
	"github.com/rs/zerolog/log"
)

// VPController serves the VP approval queue and offer signing.
type VPController struct {
	pipelineSvc service.PipelineService
}

func NewVPController(pipelineSvc service.PipelineService) *VPController {
	return &VPController{pipelineSvc: pipelineSvc}
}

// PendingApproval godoc
// @Summary List candidates awaiting VP approval
// @Tags vp
// @Produce json
// @Success 200 {array} dto.CandidateResponse
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /vp/pending [get]
// @Security BearerAuth
func (ctrl *VPController) PendingApproval(c *gin.Context) {
	candidates, err := ctrl.pipelineSvc.PendingApproval()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list pending approvals")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list pending approvals"})
		return
	}
	c.JSON(http.StatusOK, service.NewCandidateResponses(candidates, time.Now()))
}

// SignOffer godoc
// @Summary Sign a candidate's offer letter
// @Description Records the signing VP and starts the offer validity window
// @Tags vp
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} dto.CandidateResponse
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /vp/candidates/{id}/sign [post]
// @Security BearerAuth
func (ctrl *VPController) SignOffer(c *gin.Context) {
	signedBy := "VP"
	if v, ok := c.Get(middleware.ContextUserKey); ok {
		if user, ok := v.(*model.User); ok {
			signedBy = user.Username
		}
	}

	candidate, err := ctrl.pipelineSvc.SignOffer(c.Param("id"), signedBy)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Candidate not found"})
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Msg("Failed to sign offer")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to sign offer"})
		}
		return
	}
	c.JSON(http.StatusOK, service.NewCandidateResponse(candidate, time.Now()))
}
