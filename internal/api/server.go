package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/campusarena/competition-api/docs"
	v1 "github.com/campusarena/competition-api/internal/api/handler/v1"
	"github.com/campusarena/competition-api/internal/api/middleware"
	"github.com/campusarena/competition-api/internal/config"
	"github.com/campusarena/competition-api/internal/notification"
	"github.com/campusarena/competition-api/internal/repository"
	"github.com/campusarena/competition-api/internal/repository/dao"
	"github.com/campusarena/competition-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// Notifications is drained on shutdown so queued deliveries are not lost.
	Notifications *service.NotificationService
}

type repositories struct {
	competitions  *repository.CompetitionRepository
	registrations *repository.RegistrationRepository
	teams         *repository.TeamRepository
	submissions   *repository.SubmissionRepository
	notifications *repository.NotificationRepository
	externals     *repository.ExternalParticipationRepository
}

type handlers struct {
	competition  *v1.CompetitionHandler
	registration *v1.RegistrationHandler
	team         *v1.TeamHandler
	submission   *v1.SubmissionHandler
	evaluation   *v1.EvaluationHandler
	notification *v1.NotificationHandler
	external     *v1.ExternalParticipationHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	repos := initRepositories(db)
	hub := notification.NewHub(conf.Notification.BufferSize)
	s.Notifications = service.NewNotificationService(repos.notifications, hub)

	s.MountHandlers(s.initHandlers(repos, hub))

	return s
}

func initRepositories(db *gorm.DB) repositories {
	return repositories{
		competitions:  repository.NewCompetitionRepository(dao.NewCompetitionDAO(db)),
		registrations: repository.NewRegistrationRepository(dao.NewRegistrationDAO(db)),
		teams:         repository.NewTeamRepository(dao.NewTeamDAO(db)),
		submissions:   repository.NewSubmissionRepository(dao.NewSubmissionDAO(db)),
		notifications: repository.NewNotificationRepository(dao.NewNotificationDAO(db)),
		externals:     repository.NewExternalParticipationRepository(dao.NewExternalParticipationDAO(db)),
	}
}

func (s *Server) initHandlers(repos repositories, hub *notification.Hub) handlers {
	competitionSvc := service.NewCompetitionService(repos.competitions)
	registrationSvc := service.NewRegistrationService(repos.competitions, repos.registrations, repos.teams)
	teamSvc := service.NewTeamService(repos.competitions, repos.teams, registrationSvc, s.Notifications)
	submissionSvc := service.NewSubmissionService(repos.competitions, repos.registrations, repos.teams, repos.submissions, s.Notifications)
	evaluationSvc := service.NewEvaluationService(repos.competitions, repos.submissions, s.Notifications)
	externalSvc := service.NewExternalParticipationService(repos.externals, s.Notifications, s.Config.Notification.ReviewerIDs)

	return handlers{
		competition:  v1.NewCompetitionHandler(competitionSvc),
		registration: v1.NewRegistrationHandler(registrationSvc),
		team:         v1.NewTeamHandler(teamSvc),
		submission:   v1.NewSubmissionHandler(submissionSvc),
		evaluation:   v1.NewEvaluationHandler(evaluationSvc),
		notification: v1.NewNotificationHandler(s.Notifications, hub, s.Config.API.AllowedCORSDomains),
		external:     v1.NewExternalParticipationHandler(externalSvc),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	api := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())

	competitions := api.Group("/competitions")
	{
		competitions.GET("", h.competition.HandleGetCompetitions)
		competitions.GET("/:competitionID", h.competition.HandleGetCompetition)
		competitions.POST("/:competitionID/registrations", h.registration.HandleRegister)
		competitions.GET("/:competitionID/submissions", h.submission.HandleGetMyCompetitionSubmissions)
		competitions.POST("/:competitionID/submissions/assignment", h.submission.HandleSubmitAssignment)
		competitions.PUT("/:competitionID/submissions/assignment", h.submission.HandleSubmitAssignment)
		competitions.POST("/:competitionID/submissions/project", h.submission.HandleSubmitProject)
		competitions.PUT("/:competitionID/submissions/project", h.submission.HandleSubmitProject)
		competitions.POST("/:competitionID/submissions/quiz", h.submission.HandleSubmitQuiz)
	}

	api.GET("/registrations/me", h.registration.HandleGetMyRegistrations)

	teams := api.Group("/teams")
	{
		teams.GET("", h.team.HandleGetTeams)
		teams.GET("/me", h.team.HandleGetMyTeams)
		teams.POST("", h.team.HandleCreateTeam)
		teams.POST("/:teamID/join", h.team.HandleJoinTeam)
		teams.POST("/:teamID/accept-invitation", h.team.HandleAcceptInvitation)
	}

	submissions := api.Group("/submissions")
	{
		submissions.GET("", h.submission.HandleGetMySubmissions)
		submissions.GET("/:submissionID", h.submission.HandleGetSubmission)
	}

	teacher := api.Group("/teacher")
	{
		teacher.GET("/submissions", h.submission.HandleGetTeacherSubmissions)
		teacher.GET("/competitions/:competitionID/submissions", h.submission.HandleGetTeacherCompetitionSubmissions)
	}

	api.POST("/evaluations/:submissionID", h.evaluation.HandleEvaluate)

	externals := api.Group("/external-participations")
	{
		externals.GET("", h.external.HandleListMine)
		externals.POST("", h.external.HandleCreate)
		externals.GET("/review", h.external.HandleListForReview)
		externals.PATCH("/bulk/approve", h.external.HandleBulkApprove)
		externals.PATCH("/bulk/reject", h.external.HandleBulkReject)
		externals.GET("/:participationID", h.external.HandleGet)
		externals.PUT("/:participationID", h.external.HandleUpdate)
		externals.POST("/:participationID/proofs", h.external.HandleAddProof)
		externals.PATCH("/:participationID/approve", h.external.HandleApprove)
		externals.PATCH("/:participationID/reject", h.external.HandleReject)
		externals.PATCH("/:participationID/rollback", h.external.HandleRollback)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.notification.HandleGetNotifications)
		notifications.GET("/unread", h.notification.HandleGetUnreadNotifications)
		notifications.GET("/stream", h.notification.HandleStream)
		notifications.PUT("/read-all", h.notification.HandleMarkAllRead)
		notifications.PUT("/:notificationID/read", h.notification.HandleMarkRead)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Competition participation API"
	docs.SwaggerInfo.Description = "Registrations, teams, submissions and evaluations of campus competitions, and reviewed external participations."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
