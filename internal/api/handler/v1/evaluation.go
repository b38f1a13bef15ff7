package v1

import (
	"context"
	"github.com/campusarena/competition-api/internal/api/handler/v1/request"
	"github.com/campusarena/competition-api/internal/api/handler/v1/response"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/gin-gonic/gin"
	"net/http"
)

type EvaluationService interface {
	Evaluate(ctx context.Context, submissionID string, marks int, feedback string, evaluatorID string) (domain.SubmissionView, error)
}

type EvaluationHandler struct {
	svc EvaluationService
}

func NewEvaluationHandler(svc EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		svc: svc,
	}
}

// HandleEvaluate godoc
// @Summary      Evaluate a submission
// @Description  Grades a submission of an internal competition created by the teacher. A submission is graded once.
// @Tags         evaluations
// @Accept       json
// @Produce      json
// @Param        submissionID  path      string                     true  "Submission ID"
// @Param        request       body      request.EvaluationRequest  true  "request body"
// @Success      200  {object}  response.EvaluationResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /evaluations/{submissionID} [post]
// @Security BearerAuth
func (h *EvaluationHandler) HandleEvaluate(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleTeacher)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EvaluationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	view, err := h.svc.Evaluate(ctx.Request.Context(), ctx.Param("submissionID"), *req.MarksAwarded, req.Feedback, actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleEvaluate -> h.svc.Evaluate"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewEvaluationResponse(view))
}
