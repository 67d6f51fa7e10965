package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
	"mise.backend/internal/interfaces/http/middleware"
	"mise.backend/internal/interfaces/http/response"
	"mise.backend/internal/usecases"
)

type applicationService interface {
	ApplyToJob(ctx context.Context, identity *entities.Identity, input *entities.ApplyInput) (*entities.ApplyResult, error)
	GetMyApplications(ctx context.Context, identity *entities.Identity) ([]*entities.MyApplication, error)
	GetTeamApplications(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, status entities.ApplicationStatus) ([]*entities.TeamApplication, error)
	GetApplicationDetails(ctx context.Context, identity *entities.Identity, applicationID uuid.UUID) (*entities.ApplicationDetails, error)
	WithdrawApplication(ctx context.Context, identity *entities.Identity, applicationID uuid.UUID) (uuid.UUID, error)
	UpdateApplicationStatus(ctx context.Context, identity *entities.Identity, applicationID uuid.UUID, input *entities.UpdateApplicationStatusInput) (uuid.UUID, error)
}

// ApplicationHandler handles application endpoints
type ApplicationHandler struct {
	appUsecase applicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(appUsecase *usecases.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{appUsecase: appUsecase}
}

// ApplyToJob submits the caller's application to a posting
// POST /api/v1/applications
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	var input entities.ApplyInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.appUsecase.ApplyToJob(c.Request.Context(), middleware.GetIdentity(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

// GetMyApplications lists the caller's applications
// GET /api/v1/me/applications
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	apps, err := h.appUsecase.GetMyApplications(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": apps})
}

// GetTeamApplications lists applications to a team's postings
// GET /api/v1/teams/:id/applications?status=
func (h *ApplicationHandler) GetTeamApplications(c *gin.Context) {
	teamID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	status := entities.ApplicationStatus(c.Query("status"))

	apps, err := h.appUsecase.GetTeamApplications(c.Request.Context(), middleware.GetIdentity(c), teamID, status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": apps})
}

// GetApplicationDetails returns one application with its posting, team and applicant
// GET /api/v1/applications/:id
func (h *ApplicationHandler) GetApplicationDetails(c *gin.Context) {
	appID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	details, err := h.appUsecase.GetApplicationDetails(c.Request.Context(), middleware.GetIdentity(c), appID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, details)
}

// WithdrawApplication withdraws the caller's own application
// POST /api/v1/applications/:id/withdraw
func (h *ApplicationHandler) WithdrawApplication(c *gin.Context) {
	appID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.appUsecase.WithdrawApplication(c.Request.Context(), middleware.GetIdentity(c), appID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applicationId": id})
}

// UpdateApplicationStatus records a team decision on an application
// PUT /api/v1/applications/:id/status
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	appID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.UpdateApplicationStatusInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.appUsecase.UpdateApplicationStatus(c.Request.Context(), middleware.GetIdentity(c), appID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applicationId": id})
}
