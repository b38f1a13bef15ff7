package v1

import (
	"context"
	"errors"
	"github.com/campusarena/competition-api/internal/api/handler/v1/request"
	"github.com/campusarena/competition-api/internal/api/handler/v1/response"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/gin-gonic/gin"
	"net/http"
)

var errCompetitionIDRequired = errors.New("competitionId is required")

type TeamService interface {
	CreateTeam(ctx context.Context, competitionID, name string, invitedIDs []string, leaderID string) (domain.Team, error)
	JoinTeam(ctx context.Context, teamID, studentID string) (domain.Team, error)
	AcceptInvitation(ctx context.Context, teamID, studentID string) (domain.Team, error)
	ListByCompetition(ctx context.Context, competitionID string) ([]domain.Team, error)
	ListMine(ctx context.Context, studentID string) ([]domain.Team, error)
}

type TeamHandler struct {
	svc TeamService
}

func NewTeamHandler(svc TeamService) *TeamHandler {
	return &TeamHandler{
		svc: svc,
	}
}

// HandleGetTeams godoc
// @Summary      List teams of a competition
// @Tags         teams
// @Produce      json
// @Param        competitionId  query     string  true  "Competition ID"
// @Success      200  {array}   domain.Team
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams [get]
// @Security BearerAuth
func (h *TeamHandler) HandleGetTeams(ctx *gin.Context) {
	if _, respErr := getActorFromContext(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	competitionID := ctx.Query("competitionId")
	if competitionID == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errCompetitionIDRequired))
		return
	}

	teams, err := h.svc.ListByCompetition(ctx.Request.Context(), competitionID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetTeams -> h.svc.ListByCompetition"))
		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// HandleGetMyTeams godoc
// @Summary      List my teams
// @Tags         teams
// @Produce      json
// @Success      200  {array}   domain.Team
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams/me [get]
// @Security BearerAuth
func (h *TeamHandler) HandleGetMyTeams(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	teams, err := h.svc.ListMine(ctx.Request.Context(), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetMyTeams -> h.svc.ListMine"))
		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// HandleCreateTeam godoc
// @Summary      Create a team
// @Description  Creates a team led by the caller and invites the listed students
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateTeamRequest  true  "request body"
// @Success      201  {object}  domain.Team
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams [post]
// @Security BearerAuth
func (h *TeamHandler) HandleCreateTeam(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	team, err := h.svc.CreateTeam(ctx.Request.Context(), req.CompetitionID, req.TeamName, req.InvitedMemberIDs, actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleCreateTeam -> h.svc.CreateTeam"))
		return
	}

	ctx.JSON(http.StatusCreated, team)
}

// HandleJoinTeam godoc
// @Summary      Join a team
// @Tags         teams
// @Produce      json
// @Param        teamID  path      string  true  "Team ID"
// @Success      200  {object}  domain.Team
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams/{teamID}/join [post]
// @Security BearerAuth
func (h *TeamHandler) HandleJoinTeam(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	team, err := h.svc.JoinTeam(ctx.Request.Context(), ctx.Param("teamID"), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleJoinTeam -> h.svc.JoinTeam"))
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// HandleAcceptInvitation godoc
// @Summary      Accept a team invitation
// @Tags         teams
// @Produce      json
// @Param        teamID  path      string  true  "Team ID"
// @Success      200  {object}  domain.Team
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams/{teamID}/accept-invitation [post]
// @Security BearerAuth
func (h *TeamHandler) HandleAcceptInvitation(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	team, err := h.svc.AcceptInvitation(ctx.Request.Context(), ctx.Param("teamID"), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleAcceptInvitation -> h.svc.AcceptInvitation"))
		return
	}

	ctx.JSON(http.StatusOK, team)
}
