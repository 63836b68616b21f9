package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// Create - POST /api/books (auth required)
func (h *BookHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	var req book.BookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req, caller.ID)
	if err != nil {
		if errors.Is(err, book.ErrAuthorMissing) {
			response.BadRequest(c, err.Error())
		} else {
			response.InternalServerError(c, "failed to create book")
		}
		return
	}

	c.Header("Location", strconv.FormatInt(created.ID, 10))
	c.JSON(http.StatusCreated, created)
}

// List - GET /api/books?authorID=&genre=&minYear= (public)
func (h *BookHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	books, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "failed to list books")
		return
	}

	if books == nil {
		books = []book.Book{}
	}
	c.JSON(http.StatusOK, books)
}

// parseFilter validates the optional query filters before any store access.
func parseFilter(c *gin.Context) (book.Filter, error) {
	var f book.Filter

	if s := c.Query("authorID"); s != "" {
		id, err := utils.ParseID(s)
		if err != nil {
			return f, errors.New("authorID must be a positive integer")
		}
		f.AuthorID = &id
	}

	f.Genre = c.Query("genre")

	if s := c.Query("minYear"); s != "" {
		if !book.IsValidYear(s) {
			return f, errors.New("minYear must be a 4-digit year")
		}
		f.MinYear = s
	}

	return f, nil
}

// GetByID - GET /api/books/:id (public)
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, "failed to get book")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// Update - PUT /api/books/:id (auth required, owner only)
func (h *BookHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req book.BookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req, caller.ID)
	if err != nil {
		h.writeMutationError(c, err, "failed to update book")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete - DELETE /api/books/:id (auth required, owner only)
func (h *BookHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, caller.ID); err != nil {
		h.writeMutationError(c, err, "failed to delete book")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookHandler) writeMutationError(c *gin.Context, err error, fallback string) {
	var verrs validation.Errors
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, book.ErrAuthorMissing):
		response.BadRequest(c, err.Error())
	case errors.Is(err, book.ErrNotOwnerEdit), errors.Is(err, book.ErrNotOwnerDelete):
		response.Forbidden(c, err.Error())
	case errors.As(err, &verrs):
		response.ValidationError(c, err)
	default:
		response.InternalServerError(c, fallback)
	}
}
