package httperr

import (
	"errors"
	"net/http"

	"egress/internal/domain/reminder"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldDetail struct {
	Field string `json:"field"`
}

// AbortWithError writes the JSON error body and records err on the context so
// the logging middleware can report the underlying cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithValidation answers 400 with the message of the first field error in
// err's chain, falling back to a generic message.
func AbortWithValidation(c *gin.Context, err error) {
	var fe *reminder.FieldError
	if errors.As(err, &fe) {
		AbortWithError(c, http.StatusBadRequest, err, fe.Message, FieldDetail{Field: fe.Field})
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}
