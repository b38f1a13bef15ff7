package v1

import (
	"context"
	"errors"
	"github.com/campusarena/competition-api/internal/api/handler/v1/request"
	"github.com/campusarena/competition-api/internal/api/handler/v1/response"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/gin-gonic/gin"
	"io"
	"net/http"
)

type RegistrationService interface {
	Register(ctx context.Context, competitionID, studentID, teamID string) (domain.Registration, error)
	ListMine(ctx context.Context, studentID string) ([]domain.Registration, error)
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleRegister godoc
// @Summary      Register for a competition
// @Description  Registers the student for an individual competition, or the team they lead for a team competition.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        competitionID  path      string                       true   "Competition ID"
// @Param        request        body      request.RegistrationRequest  false  "team to register"
// @Success      201  {object}  domain.Registration
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /competitions/{competitionID}/registrations [post]
// @Security BearerAuth
func (h *RegistrationHandler) HandleRegister(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration, err := h.svc.Register(ctx.Request.Context(), ctx.Param("competitionID"), actor.ID, req.TeamID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleRegister -> h.svc.Register"))
		return
	}

	ctx.JSON(http.StatusCreated, registration)
}

// HandleGetMyRegistrations godoc
// @Summary      List my registrations
// @Description  Active registrations of the student, including those of teams they belong to
// @Tags         registrations
// @Produce      json
// @Success      200  {array}   domain.Registration
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /registrations/me [get]
// @Security BearerAuth
func (h *RegistrationHandler) HandleGetMyRegistrations(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	registrations, err := h.svc.ListMine(ctx.Request.Context(), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetMyRegistrations -> h.svc.ListMine"))
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}
