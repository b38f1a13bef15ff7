package v1

import (
	"context"
	"github.com/campusarena/competition-api/internal/api/handler/v1/request"
	"github.com/campusarena/competition-api/internal/api/handler/v1/response"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/gin-gonic/gin"
	"net/http"
)

type SubmissionService interface {
	SubmitOrUpdateAssignment(ctx context.Context, competitionID, studentID string, payload domain.AssignmentPayload) (domain.SubmissionView, error)
	SubmitOrUpdateProject(ctx context.Context, competitionID, studentID string, payload domain.ProjectPayload) (domain.SubmissionView, error)
	SubmitQuiz(ctx context.Context, competitionID, studentID string, answers []string) (domain.SubmissionView, error)
	ListMine(ctx context.Context, studentID string) ([]domain.SubmissionView, error)
	ListMineByCompetition(ctx context.Context, competitionID, studentID string) ([]domain.SubmissionView, error)
	GetByID(ctx context.Context, id string, actor domain.Actor) (domain.SubmissionView, error)
	ListForTeacher(ctx context.Context, teacherID string) ([]domain.SubmissionView, error)
	ListForTeacherCompetition(ctx context.Context, competitionID, teacherID string) ([]domain.SubmissionView, error)
}

type SubmissionHandler struct {
	svc SubmissionService
}

func NewSubmissionHandler(svc SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		svc: svc,
	}
}

// POST creates, PUT updates. Both go through the same upsert.
func writeStatus(ctx *gin.Context) int {
	if ctx.Request.Method == http.MethodPost {
		return http.StatusCreated
	}

	return http.StatusOK
}

// HandleSubmitAssignment godoc
// @Summary      Submit or update an assignment
// @Description  Stores the assignment of the student, or of the team they lead. POST and PUT behave the same.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        competitionID  path      string                               true  "Competition ID"
// @Param        request        body      request.AssignmentSubmissionRequest  true  "request body"
// @Success      201  {object}  response.SubmissionResponse
// @Success      200  {object}  response.SubmissionResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /competitions/{competitionID}/submissions/assignment [post]
// @Router       /competitions/{competitionID}/submissions/assignment [put]
// @Security BearerAuth
func (h *SubmissionHandler) HandleSubmitAssignment(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AssignmentSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	view, err := h.svc.SubmitOrUpdateAssignment(ctx.Request.Context(), ctx.Param("competitionID"), actor.ID, domain.AssignmentPayload{
		File:        req.File,
		Description: req.Description,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleSubmitAssignment -> h.svc.SubmitOrUpdateAssignment"))
		return
	}

	ctx.JSON(writeStatus(ctx), response.NewSubmissionResponse(view))
}

// HandleSubmitProject godoc
// @Summary      Submit or update a project
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        competitionID  path      string                            true  "Competition ID"
// @Param        request        body      request.ProjectSubmissionRequest  true  "request body"
// @Success      201  {object}  response.SubmissionResponse
// @Success      200  {object}  response.SubmissionResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /competitions/{competitionID}/submissions/project [post]
// @Router       /competitions/{competitionID}/submissions/project [put]
// @Security BearerAuth
func (h *SubmissionHandler) HandleSubmitProject(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ProjectSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	view, err := h.svc.SubmitOrUpdateProject(ctx.Request.Context(), ctx.Param("competitionID"), actor.ID, domain.ProjectPayload{
		RepoLink:    req.RepoLink,
		Description: req.Description,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleSubmitProject -> h.svc.SubmitOrUpdateProject"))
		return
	}

	ctx.JSON(writeStatus(ctx), response.NewSubmissionResponse(view))
}

// HandleSubmitQuiz godoc
// @Summary      Submit quiz answers
// @Description  A quiz is accepted once per student or team
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        competitionID  path      string                         true  "Competition ID"
// @Param        request        body      request.QuizSubmissionRequest  true  "request body"
// @Success      201  {object}  response.SubmissionResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /competitions/{competitionID}/submissions/quiz [post]
// @Security BearerAuth
func (h *SubmissionHandler) HandleSubmitQuiz(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.QuizSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	view, err := h.svc.SubmitQuiz(ctx.Request.Context(), ctx.Param("competitionID"), actor.ID, req.Answers)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleSubmitQuiz -> h.svc.SubmitQuiz"))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSubmissionResponse(view))
}

// HandleGetMySubmissions godoc
// @Summary      List my submissions
// @Description  Individual submissions of the student and submissions of every team they belong to
// @Tags         submissions
// @Produce      json
// @Success      200  {array}   response.SubmissionResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /submissions [get]
// @Security BearerAuth
func (h *SubmissionHandler) HandleGetMySubmissions(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	views, err := h.svc.ListMine(ctx.Request.Context(), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetMySubmissions -> h.svc.ListMine"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSubmissionResponses(views))
}

// HandleGetMyCompetitionSubmissions godoc
// @Summary      List my submissions for a competition
// @Tags         submissions
// @Produce      json
// @Param        competitionID  path      string  true  "Competition ID"
// @Success      200  {array}   response.SubmissionResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /competitions/{competitionID}/submissions [get]
// @Security BearerAuth
func (h *SubmissionHandler) HandleGetMyCompetitionSubmissions(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	views, err := h.svc.ListMineByCompetition(ctx.Request.Context(), ctx.Param("competitionID"), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetMyCompetitionSubmissions -> h.svc.ListMineByCompetition"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSubmissionResponses(views))
}

// HandleGetSubmission godoc
// @Summary      Get a submission
// @Description  Students see their own and their teams' submissions. Teachers see submissions of competitions they own.
// @Tags         submissions
// @Produce      json
// @Param        submissionID  path      string  true  "Submission ID"
// @Success      200  {object}  response.SubmissionResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /submissions/{submissionID} [get]
// @Security BearerAuth
func (h *SubmissionHandler) HandleGetSubmission(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent, domain.RoleTeacher, domain.RoleAdmin)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	view, err := h.svc.GetByID(ctx.Request.Context(), ctx.Param("submissionID"), actor)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetSubmission -> h.svc.GetByID"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSubmissionResponse(view))
}

// HandleGetTeacherSubmissions godoc
// @Summary      List submissions to grade
// @Description  Submissions of every internal competition created by the teacher
// @Tags         teacher
// @Produce      json
// @Success      200  {array}   response.SubmissionResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teacher/submissions [get]
// @Security BearerAuth
func (h *SubmissionHandler) HandleGetTeacherSubmissions(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleTeacher, domain.RoleAdmin)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	views, err := h.svc.ListForTeacher(ctx.Request.Context(), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetTeacherSubmissions -> h.svc.ListForTeacher"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSubmissionResponses(views))
}

// HandleGetTeacherCompetitionSubmissions godoc
// @Summary      List submissions of one of my competitions
// @Tags         teacher
// @Produce      json
// @Param        competitionID  path      string  true  "Competition ID"
// @Success      200  {array}   response.SubmissionResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teacher/competitions/{competitionID}/submissions [get]
// @Security BearerAuth
func (h *SubmissionHandler) HandleGetTeacherCompetitionSubmissions(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleTeacher, domain.RoleAdmin)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	views, err := h.svc.ListForTeacherCompetition(ctx.Request.Context(), ctx.Param("competitionID"), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetTeacherCompetitionSubmissions -> h.svc.ListForTeacherCompetition"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSubmissionResponses(views))
}
