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

type teamService interface {
	CreateTeam(ctx context.Context, identity *entities.Identity, input *entities.CreateTeamInput) (*entities.Team, error)
	GetMyTeams(ctx context.Context, identity *entities.Identity) ([]*entities.MyTeam, error)
	UpdateTeam(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, input *entities.UpdateTeamInput) (*entities.Team, error)
	DeleteTeam(ctx context.Context, identity *entities.Identity, teamID uuid.UUID) error
}

type TeamHandler struct {
	teamUsecase teamService
}

func NewTeamHandler(teamUsecase *usecases.TeamUsecase) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase}
}

// CreateTeam creates a team owned by the caller.
// POST /api/v1/teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var input entities.CreateTeamInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	team, err := h.teamUsecase.CreateTeam(c.Request.Context(), middleware.GetIdentity(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, team)
}

// GetMyTeams lists the caller's teams with their membership.
// GET /api/v1/me/teams
func (h *TeamHandler) GetMyTeams(c *gin.Context) {
	teams, err := h.teamUsecase.GetMyTeams(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": teams})
}

// UpdateTeam patches team details.
// PATCH /api/v1/teams/:id
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.UpdateTeamInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	team, err := h.teamUsecase.UpdateTeam(c.Request.Context(), middleware.GetIdentity(c), teamID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, team)
}

// DeleteTeam deletes a team with its postings, applications, matches and memberships.
// DELETE /api/v1/teams/:id
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.teamUsecase.DeleteTeam(c.Request.Context(), middleware.GetIdentity(c), teamID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Team deleted"})
}
