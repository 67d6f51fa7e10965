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

type matchService interface {
	GetMyMatches(ctx context.Context, identity *entities.Identity) ([]*entities.MyMatch, error)
	GetTeamMatches(ctx context.Context, identity *entities.Identity, teamID uuid.UUID) ([]*entities.TeamMatch, error)
	UpdateMatchStatus(ctx context.Context, identity *entities.Identity, matchID uuid.UUID, input *entities.UpdateMatchStatusInput) (uuid.UUID, error)
}

type MatchHandler struct {
	matchUsecase matchService
}

func NewMatchHandler(matchUsecase *usecases.MatchUsecase) *MatchHandler {
	return &MatchHandler{matchUsecase: matchUsecase}
}

// GetMyMatches lists the caller's matches.
// GET /api/v1/me/matches
func (h *MatchHandler) GetMyMatches(c *gin.Context) {
	matches, err := h.matchUsecase.GetMyMatches(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": matches})
}

// GetTeamMatches lists a team's matches.
// GET /api/v1/teams/:id/matches
func (h *MatchHandler) GetTeamMatches(c *gin.Context) {
	teamID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	matches, err := h.matchUsecase.GetTeamMatches(c.Request.Context(), middleware.GetIdentity(c), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": matches})
}

// UpdateMatchStatus completes or terminates an active match.
// PUT /api/v1/matches/:id/status
func (h *MatchHandler) UpdateMatchStatus(c *gin.Context) {
	matchID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.UpdateMatchStatusInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.matchUsecase.UpdateMatchStatus(c.Request.Context(), middleware.GetIdentity(c), matchID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"matchId": id})
}
