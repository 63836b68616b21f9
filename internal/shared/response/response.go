package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Envelope is the error body shape for every failed request:
// {"error": <message or field->message map>}.
type Envelope struct {
	Error interface{} `json:"error"`
}

// Error writes the error envelope with a plain message.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Error: message})
}

// ValidationError writes a 400 with field-level details when err is an
// ozzo validation.Errors (marshals to {"field": "message"}), and with the
// plain error text otherwise.
func ValidationError(c *gin.Context, err error) {
	if verrs, ok := err.(validation.Errors); ok {
		c.JSON(http.StatusBadRequest, Envelope{Error: verrs})
		return
	}
	Error(c, http.StatusBadRequest, err.Error())
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
