package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campusarena/competition-api/internal/service"
)

func TestErrFromService(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
		wantText   string
	}{
		{
			name:       "validation",
			err:        service.ErrTeamRequired,
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
			wantText:   service.ErrTeamRequired.Message,
		},
		{
			name:       "conflict is a client error",
			err:        service.ErrTeamFull,
			wantStatus: http.StatusBadRequest,
			wantKind:   "conflict",
			wantText:   service.ErrTeamFull.Message,
		},
		{
			name:       "not found",
			err:        service.ErrCompetitionNotFound,
			wantStatus: http.StatusNotFound,
			wantKind:   "not_found",
			wantText:   "Competition not found",
		},
		{
			name:       "forbidden",
			err:        service.ErrNotTeamLeader,
			wantStatus: http.StatusForbidden,
			wantKind:   "forbidden",
			wantText:   service.ErrNotTeamLeader.Message,
		},
		{
			name:       "internal error is hidden",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   "internal",
			wantText:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrFromService(tt.err, "test")

			assert.Equal(t, tt.wantStatus, got.HTTPStatusCode)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantText, got.ErrorText)
		})
	}
}

func TestRenderErr(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RenderErr(ctx, ErrNotFound("submission", "submissionID", "s-1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"kind":"not_found","error":"submission with submissionID s-1 not found"}`, rec.Body.String())
}
