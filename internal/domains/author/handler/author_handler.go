package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// Create - POST /api/authors (auth required)
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalServerError(c, "failed to create author")
		return
	}

	c.Header("Location", strconv.FormatInt(created.ID, 10))
	c.JSON(http.StatusCreated, created)
}

// List - GET /api/authors (public)
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list authors")
		return
	}

	if authors == nil {
		authors = []author.Author{}
	}
	c.JSON(http.StatusOK, authors)
}

// GetByID - GET /api/authors/:id (public)
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, "failed to get author")
		}
		return
	}

	c.JSON(http.StatusOK, a)
}

// Delete - DELETE /api/authors/:id (auth required)
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, author.ErrAuthorNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, author.ErrAuthorHasBooks):
			response.Conflict(c, err.Error())
		default:
			response.InternalServerError(c, "failed to delete author")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
