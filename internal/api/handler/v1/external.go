package v1

import (
	"context"
	"github.com/campusarena/competition-api/internal/api/handler/v1/request"
	"github.com/campusarena/competition-api/internal/api/handler/v1/response"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/gin-gonic/gin"
	"net/http"
)

type ExternalParticipationService interface {
	Create(ctx context.Context, ownerID string, details domain.ExternalDetails, proofFiles []string) (domain.ExternalParticipation, error)
	Update(ctx context.Context, id, ownerID string, details domain.ExternalDetails) (domain.ExternalParticipation, error)
	AddProof(ctx context.Context, id, ownerID, reference string) (domain.ExternalParticipation, error)
	ListMine(ctx context.Context, ownerID string) ([]domain.ExternalParticipation, error)
	Get(ctx context.Context, id string, actor domain.Actor) (domain.ExternalParticipation, error)
	ListForReview(ctx context.Context, status string) ([]domain.ExternalParticipation, error)
	Approve(ctx context.Context, id, note string) (domain.ExternalParticipation, error)
	Reject(ctx context.Context, id, reason string) (domain.ExternalParticipation, error)
	Rollback(ctx context.Context, id string) (domain.ExternalParticipation, error)
	BulkApprove(ctx context.Context, ids []string, note string) ([]domain.ExternalParticipation, error)
	BulkReject(ctx context.Context, ids []string, reason string) ([]domain.ExternalParticipation, error)
}

type ExternalParticipationHandler struct {
	svc ExternalParticipationService
}

func NewExternalParticipationHandler(svc ExternalParticipationService) *ExternalParticipationHandler {
	return &ExternalParticipationHandler{
		svc: svc,
	}
}

// HandleCreate godoc
// @Summary      Report an external participation
// @Description  Records a competition the student took part in outside the platform. It waits for admin review.
// @Tags         external-participations
// @Accept       json
// @Produce      json
// @Param        request  body      request.ExternalParticipationRequest  true  "request body"
// @Success      201  {object}  response.ExternalParticipationResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /external-participations [post]
// @Security BearerAuth
func (h *ExternalParticipationHandler) HandleCreate(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ExternalParticipationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), actor.ID, req.Details(), req.ProofFiles)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleCreate -> h.svc.Create"))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewExternalParticipationResponse(created))
}

// HandleUpdate godoc
// @Summary      Update an external participation
// @Description  Replaces the details and sends the participation back to review. Proof files are kept.
// @Tags         external-participations
// @Accept       json
// @Produce      json
// @Param        participationID  path      string                                true  "Participation ID"
// @Param        request          body      request.ExternalParticipationRequest  true  "request body"
// @Success      200  {object}  response.ExternalParticipationResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /external-participations/{participationID} [put]
// @Security BearerAuth
func (h *ExternalParticipationHandler) HandleUpdate(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ExternalParticipationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), ctx.Param("participationID"), actor.ID, req.Details())
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleUpdate -> h.svc.Update"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewExternalParticipationResponse(updated))
}

// HandleAddProof godoc
// @Summary      Attach a proof file
// @Tags         external-participations
// @Accept       json
// @Produce      json
// @Param        participationID  path      string                true  "Participation ID"
// @Param        request          body      request.ProofRequest  true  "request body"
// @Success      200  {object}  response.ExternalParticipationResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /external-participations/{participationID}/proofs [post]
// @Security BearerAuth
func (h *ExternalParticipationHandler) HandleAddProof(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ProofRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.AddProof(ctx.Request.Context(), ctx.Param("participationID"), actor.ID, req.File)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleAddProof -> h.svc.AddProof"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewExternalParticipationResponse(updated))
}

// HandleListMine godoc
// @Summary      List my external participations
// @Tags         external-participations
// @Produce      json
// @Success      200  {array}   response.ExternalParticipationResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /external-participations [get]
// @Security BearerAuth
func (h *ExternalParticipationHandler) HandleListMine(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent, domain.RoleAdmin)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participations, err := h.svc.ListMine(ctx.Request.Context(), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleListMine -> h.svc.ListMine"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewExternalParticipationResponses(participations))
}

// HandleGet godoc
// @Summary      Get an external participation
// @Description  Visible to its owner and to admins.
// @Tags         external-participations
// @Produce      json
// @Param        participationID  path      string  true  "Participation ID"
// @Success      200  {object}  response.ExternalParticipationResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /external-participations/{participationID} [get]
// @Security BearerAuth
func (h *ExternalParticipationHandler) HandleGet(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent, domain.RoleAdmin)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participation, err := h.svc.Get(ctx.Request.Context(), ctx.Param("participationID"), actor)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGet -> h.svc.Get"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewExternalParticipationResponse(participation))
}

// HandleListForReview godoc
// @Summary      List external participations for review
// @Description  Newest submission first. status defaults to PENDING, ALL lists every status.
// @Tags         external-participations
// @Produce      json
// @Param        status  query     string  false  "PENDING, APPROVED, REJECTED or ALL"
// @Success      200  {array}   response.ExternalParticipationResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /external-participations/review [get]
// @Security BearerAuth
func (h *ExternalParticipationHandler) HandleListForReview(ctx *gin.Context) {
	if _, respErr := getActorFromContext(ctx, domain.RoleAdmin); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participations, err := h.svc.ListForReview(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleListForReview -> h.svc.ListForReview"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewExternalParticipationResponses(participations))
}

// bindReview reads the optional review body. An empty body is no note.
func bindReview(ctx *gin.Context) (request.ReviewRequest, *response.Err) {
	var req request.ReviewRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return req, response.ErrBadRequest(err)
		}
	}

	if err := req.Validate(); err != nil {
		return req, response.ErrBadRequest(err)
	}

	return req, nil
}

// HandleApprove godoc
// @Summary      Approve an external participation
// @Tags         external-participations
// @Accept       json
// @Produce      json
// @Param        participationID  path      string                 true   "Participation ID"
// @Param        request          body      request.ReviewRequest  false  "request body"
// @Success      200  {object}  response.ExternalParticipationResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /external-participations/{participationID}/approve [patch]
// @Security BearerAuth
func (h *ExternalParticipationHandler) HandleApprove(ctx *gin.Context) {
	if _, respErr := getActorFromContext(ctx, domain.RoleAdmin); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req, respErr := bindReview(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	approved, err := h.svc.Approve(ctx.Request.Context(), ctx.Param("participationID"), req.Notes)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleApprove -> h.svc.Approve"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewExternalParticipationResponse(approved))
}

// HandleReject godoc
// @Summary      Reject an external participation
// @Tags         external-participations
// @Accept       json
// @Produce      json
// @Param        participationID  path      string                 true   "Participation ID"
// @Param        request          body      request.ReviewRequest  false  "request body"
// @Success      200  {object}  response.ExternalParticipationResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /external-participations/{participationID}/reject [patch]
// @Security BearerAuth
func (h *ExternalParticipationHandler) HandleReject(ctx *gin.Context) {
	if _, respErr := getActorFromContext(ctx, domain.RoleAdmin); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req, respErr := bindReview(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	rejected, err := h.svc.Reject(ctx.Request.Context(), ctx.Param("participationID"), req.Reason)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleReject -> h.svc.Reject"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewExternalParticipationResponse(rejected))
}

// HandleRollback godoc
// @Summary      Send a decided external participation back to review
// @Tags         external-participations
// @Produce      json
// @Param        participationID  path      string  true  "Participation ID"
// @Success      200  {object}  response.ExternalParticipationResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /external-participations/{participationID}/rollback [patch]
// @Security BearerAuth
func (h *ExternalParticipationHandler) HandleRollback(ctx *gin.Context) {
	if _, respErr := getActorFromContext(ctx, domain.RoleAdmin); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	pending, err := h.svc.Rollback(ctx.Request.Context(), ctx.Param("participationID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleRollback -> h.svc.Rollback"))
		return
	}

	ctx.JSON(http.StatusOK, response.NewExternalParticipationResponse(pending))
}

func bindBulkReview(ctx *gin.Context) (request.BulkReviewRequest, *response.Err) {
	var req request.BulkReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return req, response.ErrBadRequest(err)
	}

	if err := req.Validate(); err != nil {
		return req, response.ErrBadRequest(err)
	}

	return req, nil
}

func newBulkReviewResponse(reviewed []domain.ExternalParticipation) response.BulkReviewResponse {
	return response.BulkReviewResponse{
		Reviewed:       len(reviewed),
		Participations: response.NewExternalParticipationResponses(reviewed),
	}
}

// HandleBulkApprove godoc
// @Summary      Approve several external participations
// @Description  Pending participations among ids are approved. Unknown or already decided ids are skipped.
// @Tags         external-participations
// @Accept       json
// @Produce      json
// @Param        request  body      request.BulkReviewRequest  true  "request body"
// @Success      200  {object}  response.BulkReviewResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /external-participations/bulk/approve [patch]
// @Security BearerAuth
func (h *ExternalParticipationHandler) HandleBulkApprove(ctx *gin.Context) {
	if _, respErr := getActorFromContext(ctx, domain.RoleAdmin); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req, respErr := bindBulkReview(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	approved, err := h.svc.BulkApprove(ctx.Request.Context(), req.IDs, req.Notes)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleBulkApprove -> h.svc.BulkApprove"))
		return
	}

	ctx.JSON(http.StatusOK, newBulkReviewResponse(approved))
}

// HandleBulkReject godoc
// @Summary      Reject several external participations
// @Description  Pending participations among ids are rejected. Unknown or already decided ids are skipped.
// @Tags         external-participations
// @Accept       json
// @Produce      json
// @Param        request  body      request.BulkReviewRequest  true  "request body"
// @Success      200  {object}  response.BulkReviewResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /external-participations/bulk/reject [patch]
// @Security BearerAuth
func (h *ExternalParticipationHandler) HandleBulkReject(ctx *gin.Context) {
	if _, respErr := getActorFromContext(ctx, domain.RoleAdmin); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req, respErr := bindBulkReview(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	rejected, err := h.svc.BulkReject(ctx.Request.Context(), req.IDs, req.Reason)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleBulkReject -> h.svc.BulkReject"))
		return
	}

	ctx.JSON(http.StatusOK, newBulkReviewResponse(rejected))
}
