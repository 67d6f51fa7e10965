package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/interfaces/http/middleware"
	"mise.backend/internal/interfaces/http/response"
	"mise.backend/internal/usecases"
)

type talentService interface {
	GetCurrentUser(identity *entities.Identity) *entities.Identity
	GetProfile(ctx context.Context, identity *entities.Identity) (*entities.TalentProfile, error)
	SaveProfile(ctx context.Context, identity *entities.Identity, input *entities.TalentProfileInput) (*entities.TalentProfile, error)
	DeleteProfile(ctx context.Context, identity *entities.Identity) error
}

type talentSearchService interface {
	SearchTalent(ctx context.Context, identity *entities.Identity, input *entities.TalentSearchInput) ([]entities.TalentSearchResult, error)
}

// TalentHandler handles the caller's profile endpoints and talent search
type TalentHandler struct {
	talentUsecase talentService
	searchUsecase talentSearchService
}

// NewTalentHandler creates a new talent handler
func NewTalentHandler(talentUsecase *usecases.TalentUsecase, searchUsecase *usecases.TalentSearchUsecase) *TalentHandler {
	return &TalentHandler{talentUsecase: talentUsecase, searchUsecase: searchUsecase}
}

// GetCurrentUser returns the caller identity, or null when anonymous
// GET /api/v1/me
func (h *TalentHandler) GetCurrentUser(c *gin.Context) {
	response.Success(c, http.StatusOK, h.talentUsecase.GetCurrentUser(middleware.GetIdentity(c)))
}

// GetProfile returns the caller's profile, or null when there is none
// GET /api/v1/me/profile
func (h *TalentHandler) GetProfile(c *gin.Context) {
	profile, err := h.talentUsecase.GetProfile(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// SaveProfile creates or replaces the caller's profile
// PUT /api/v1/me/profile
func (h *TalentHandler) SaveProfile(c *gin.Context) {
	var input entities.TalentProfileInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.talentUsecase.SaveProfile(c.Request.Context(), middleware.GetIdentity(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// DeleteProfile removes the caller's profile and everything hanging off it
// DELETE /api/v1/me/profile
func (h *TalentHandler) DeleteProfile(c *gin.Context) {
	if err := h.talentUsecase.DeleteProfile(c.Request.Context(), middleware.GetIdentity(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Profile deleted"})
}

// SearchTalent lists talent matching the filters
// GET /api/v1/talent/search
func (h *TalentHandler) SearchTalent(c *gin.Context) {
	var input entities.TalentSearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if err := c.ShouldBindQuery(&input.Availability); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	results, err := h.searchUsecase.SearchTalent(c.Request.Context(), middleware.GetIdentity(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": results})
}
