package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/interfaces/http/response"
	"mise.backend/internal/usecases"
)

type optionService interface {
	GetOptions(ctx context.Context, category string, activeOnly bool) ([]*entities.PredefinedOption, error)
	SearchOptions(ctx context.Context, category, query string, activeOnly bool) ([]*entities.PredefinedOption, error)
	AddOption(ctx context.Context, input *entities.CreatePredefinedOptionInput) (*entities.PredefinedOption, error)
	UpdateOption(ctx context.Context, id uuid.UUID, input *entities.UpdatePredefinedOptionInput) (*entities.PredefinedOption, error)
	GetCategories(ctx context.Context) ([]string, error)
}

// OptionHandler handles predefined option endpoints
type OptionHandler struct {
	optionUsecase optionService
}

// NewOptionHandler creates a new option handler
func NewOptionHandler(optionUsecase *usecases.PredefinedOptionUsecase) *OptionHandler {
	return &OptionHandler{optionUsecase: optionUsecase}
}

// GetOptions lists a category's options
// GET /api/v1/options?category=&activeOnly=
func (h *OptionHandler) GetOptions(c *gin.Context) {
	category, activeOnly, err := categoryQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	options, err := h.optionUsecase.GetOptions(c.Request.Context(), category, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": options})
}

// SearchOptions filters a category's options by display name or value
// GET /api/v1/options/search?category=&q=&activeOnly=
func (h *OptionHandler) SearchOptions(c *gin.Context) {
	category, activeOnly, err := categoryQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	options, err := h.optionUsecase.SearchOptions(c.Request.Context(), category, c.Query("q"), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": options})
}

// AddOption creates an option
// POST /api/v1/options
func (h *OptionHandler) AddOption(c *gin.Context) {
	var input entities.CreatePredefinedOptionInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	option, err := h.optionUsecase.AddOption(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, option)
}

// UpdateOption patches an option
// PATCH /api/v1/options/:id
func (h *OptionHandler) UpdateOption(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.UpdatePredefinedOptionInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	option, err := h.optionUsecase.UpdateOption(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, option)
}

// GetCategories lists the option categories
// GET /api/v1/option-categories
func (h *OptionHandler) GetCategories(c *gin.Context) {
	categories, err := h.optionUsecase.GetCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": categories})
}

func categoryQuery(c *gin.Context) (string, bool, error) {
	category := c.Query("category")
	if category == "" {
		return "", false, domainerrors.BadRequest("category is required")
	}
	activeOnly, err := queryBool(c, "activeOnly", false)
	if err != nil {
		return "", false, err
	}
	return category, activeOnly, nil
}
