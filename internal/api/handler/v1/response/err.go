package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campusarena/competition-api/internal/service"
)

// Err is the body of every failed request.
type Err struct {
	HTTPStatusCode int    `json:"-"`
	Kind           string `json:"kind"`
	ErrorText      string `json:"error"`

	cause error
}

func (e *Err) Error() string {
	return e.ErrorText
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.cause),
		)
	}

	ctx.JSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Kind:           service.KindValidation.String(),
		ErrorText:      err.Error(),
		cause:          err,
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Kind:           "unauthorized",
		ErrorText:      err.Error(),
		cause:          err,
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusForbidden,
		Kind:           service.KindForbidden.String(),
		ErrorText:      err.Error(),
		cause:          err,
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Kind:           service.KindNotFound.String(),
		ErrorText:      fmt.Sprintf("%s with %s %v not found", resource, key, value),
	}
}

// ErrInternalServerError hides err from the client. It is logged by RenderErr.
func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Kind:           "internal",
		ErrorText:      http.StatusText(http.StatusInternalServerError),
		cause:          err,
	}
}

// ErrFromService renders a business rule violation with its own message.
// Conflicts are client errors, forbidden actions are 403. Anything that is not
// a *service.Error is internal.
func ErrFromService(err error, op string) *Err {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		return ErrInternalServerError(fmt.Errorf("%s -> %w", op, err))
	}

	status := http.StatusBadRequest
	switch svcErr.Kind {
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindForbidden:
		status = http.StatusForbidden
	}

	return &Err{
		HTTPStatusCode: status,
		Kind:           svcErr.Kind.String(),
		ErrorText:      svcErr.Message,
		cause:          err,
	}
}
