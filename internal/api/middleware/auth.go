package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusarena/competition-api/internal/api/handler/v1/response"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/pkg/jwthelper"
)

const actorKey = "actor"

var (
	errMissingToken = errors.New("missing bearer token")
	errNoActor      = errors.New("no authenticated actor in context")
)

type Authenticator struct {
	key []byte
}

func NewAuthenticator(key string) *Authenticator {
	return &Authenticator{
		key: []byte(key),
	}
}

// VerifyJWT authenticates the bearer token and stores the actor it names in
// the gin context. Browsers cannot set headers on websocket upgrades, so the
// token is also accepted from the token query parameter.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerToken(ctx)
		if tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			ctx.Abort()
			return
		}

		claims, err := jwthelper.ParseToken(a.key, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			ctx.Abort()
			return
		}

		actor := domain.Actor{ID: claims.Subject}
		for _, role := range claims.Roles {
			actor.Roles = append(actor.Roles, domain.Role(strings.ToUpper(role)))
		}
		ctx.Set(actorKey, actor)

		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	return ctx.Query("token")
}

// SetActor stores actor in the context the way VerifyJWT does.
func SetActor(ctx *gin.Context, actor domain.Actor) {
	ctx.Set(actorKey, actor)
}

// ActorFromContext returns the actor stored by VerifyJWT.
func ActorFromContext(ctx *gin.Context) (domain.Actor, error) {
	value, ok := ctx.Get(actorKey)
	if !ok {
		return domain.Actor{}, errNoActor
	}

	actor, ok := value.(domain.Actor)
	if !ok || actor.ID == "" {
		return domain.Actor{}, errNoActor
	}

	return actor, nil
}
