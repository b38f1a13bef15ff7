package v1

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusarena/competition-api/internal/api/handler/v1/response"
	"github.com/campusarena/competition-api/internal/api/middleware"
	"github.com/campusarena/competition-api/internal/domain"
)

// getActorFromContext returns the authenticated actor. When roles are given the
// actor must hold at least one of them.
func getActorFromContext(ctx *gin.Context, roles ...domain.Role) (domain.Actor, *response.Err) {
	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		return domain.Actor{}, response.ErrUnauthorized(err)
	}

	if len(roles) > 0 && !actor.HasRole(roles...) {
		return domain.Actor{}, response.ErrPermissionDenied(
			fmt.Errorf("user %v must have role %s", actor.ID, joinRoles(roles)),
		)
	}

	return actor, nil
}

func joinRoles(roles []domain.Role) string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}

	return strings.Join(names, " or ")
}
