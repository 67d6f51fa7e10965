package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	domainerrors "mise.backend/internal/domain/errors"
)

func pathID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest("Invalid " + name)
	}
	return id, nil
}

func queryBool(c *gin.Context, name string, fallback bool) (bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerrors.BadRequest(name + " must be a boolean")
	}
	return v, nil
}

func queryFloat(c *gin.Context, name string) (null.Float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return null.Float64{}, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return null.Float64{}, domainerrors.BadRequest(name + " must be a number")
	}
	return null.Float64From(v), nil
}

func bindJSON(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return domainerrors.BadRequest(err.Error())
	}
	return nil
}
