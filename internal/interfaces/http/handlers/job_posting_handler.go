package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/interfaces/http/middleware"
	"mise.backend/internal/interfaces/http/response"
	"mise.backend/internal/usecases"
)

type jobPostingService interface {
	GetTeamJobPostings(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, activeOnly bool) ([]*entities.JobPosting, error)
	CreateJobPosting(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, input *entities.JobPostingInput) (*entities.JobPosting, error)
	UpdateJobPosting(ctx context.Context, identity *entities.Identity, postingID uuid.UUID, input *entities.JobPostingInput) (*entities.JobPosting, error)
	DeactivateJobPosting(ctx context.Context, identity *entities.Identity, postingID uuid.UUID) error
	SearchJobPostings(ctx context.Context, identity *entities.Identity, input *entities.JobSearchInput) ([]entities.JobSearchResult, error)
}

// JobPostingHandler handles job posting endpoints
type JobPostingHandler struct {
	postingUsecase jobPostingService
}

// NewJobPostingHandler creates a new job posting handler
func NewJobPostingHandler(postingUsecase *usecases.JobPostingUsecase) *JobPostingHandler {
	return &JobPostingHandler{postingUsecase: postingUsecase}
}

// GetTeamJobPostings lists a team's postings
// GET /api/v1/teams/:id/job-postings?activeOnly=
func (h *JobPostingHandler) GetTeamJobPostings(c *gin.Context) {
	teamID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	activeOnly, err := queryBool(c, "activeOnly", false)
	if err != nil {
		response.Error(c, err)
		return
	}

	postings, err := h.postingUsecase.GetTeamJobPostings(c.Request.Context(), middleware.GetIdentity(c), teamID, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": postings})
}

// CreateJobPosting creates an active posting for a team
// POST /api/v1/teams/:id/job-postings
func (h *JobPostingHandler) CreateJobPosting(c *gin.Context) {
	teamID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.JobPostingInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	posting, err := h.postingUsecase.CreateJobPosting(c.Request.Context(), middleware.GetIdentity(c), teamID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, posting)
}

// UpdateJobPosting replaces a posting's details
// PUT /api/v1/job-postings/:id
func (h *JobPostingHandler) UpdateJobPosting(c *gin.Context) {
	postingID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.JobPostingInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	posting, err := h.postingUsecase.UpdateJobPosting(c.Request.Context(), middleware.GetIdentity(c), postingID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, posting)
}

// DeactivateJobPosting closes a posting to new applications
// DELETE /api/v1/job-postings/:id
func (h *JobPostingHandler) DeactivateJobPosting(c *gin.Context) {
	postingID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.postingUsecase.DeactivateJobPosting(c.Request.Context(), middleware.GetIdentity(c), postingID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Job posting deactivated"})
}

// SearchJobPostings lists active postings matching the filters, best match first
// GET /api/v1/job-postings/search
func (h *JobPostingHandler) SearchJobPostings(c *gin.Context) {
	var input entities.JobSearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if err := c.ShouldBindQuery(&input.Availability); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	var err error
	if input.CompensationMin, err = queryFloat(c, "compensationMin"); err != nil {
		response.Error(c, err)
		return
	}
	if input.CompensationMax, err = queryFloat(c, "compensationMax"); err != nil {
		response.Error(c, err)
		return
	}

	results, err := h.postingUsecase.SearchJobPostings(c.Request.Context(), middleware.GetIdentity(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": results})
}
