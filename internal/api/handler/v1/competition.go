package v1

import (
	"context"
	"github.com/campusarena/competition-api/internal/api/handler/v1/response"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/gin-gonic/gin"
	"net/http"
	"time"
)

type CompetitionService interface {
	List(ctx context.Context) ([]domain.Competition, error)
	Get(ctx context.Context, id string) (domain.Competition, error)
}

type CompetitionHandler struct {
	svc CompetitionService
	now func() time.Time
}

func NewCompetitionHandler(svc CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{
		svc: svc,
		now: time.Now,
	}
}

// HandleGetCompetitions godoc
// @Summary      List competitions
// @Description  Lists the competition catalog with the registration and submission windows evaluated now
// @Tags         competitions
// @Produce      json
// @Success      200  {array}   response.CompetitionResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /competitions [get]
// @Security BearerAuth
func (h *CompetitionHandler) HandleGetCompetitions(ctx *gin.Context) {
	if _, respErr := getActorFromContext(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	competitions, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetCompetitions -> h.svc.List"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewCompetitionResponses(competitions, h.now()))
}

// HandleGetCompetition godoc
// @Summary      Get a competition
// @Tags         competitions
// @Produce      json
// @Param        competitionID  path      string  true  "Competition ID"
// @Success      200  {object}  response.CompetitionResponse
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /competitions/{competitionID} [get]
// @Security BearerAuth
func (h *CompetitionHandler) HandleGetCompetition(ctx *gin.Context) {
	if _, respErr := getActorFromContext(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	competition, err := h.svc.Get(ctx.Request.Context(), ctx.Param("competitionID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetCompetition -> h.svc.Get"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewCompetitionResponse(competition, h.now()))
}
