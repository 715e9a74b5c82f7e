package v1

import (
	"log"

	"liftout/internal/config"
	"liftout/internal/database"
	"liftout/internal/delivery/http/handler"
	"liftout/internal/delivery/http/middleware"
	"liftout/internal/infrastructure/persistence/postgres"
	"liftout/internal/pkg/jwt"
	"liftout/internal/repository"
	"liftout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.MatchCache, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(db)
	teamRepo := repository.NewPostgresTeamRepository(db)
	opportunityRepo := repository.NewPostgresOpportunityRepository(db)
	companyRepo := repository.NewPostgresCompanyRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	matchingUC := usecase.NewMatchingUsecase(teamRepo, opportunityRepo, cache, logger)
	cultureUC := usecase.NewCultureUsecase(teamRepo, companyRepo)
	teamUC := usecase.NewTeamUsecase(teamRepo)
	opportunityUC := usecase.NewOpportunityUsecase(opportunityRepo)

	authHandler := handler.NewAuthHandler(authUC)
	matchHandler := handler.NewMatchHandler(matchingUC)
	cultureHandler := handler.NewCultureHandler(cultureUC)
	teamHandler := handler.NewTeamHandler(teamUC)
	opportunityHandler := handler.NewOpportunityHandler(opportunityUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	matchHandler.RegisterRoutes(protected.Group("/matching"))
	cultureHandler.RegisterRoutes(protected.Group("/culture"))
	teamHandler.RegisterRoutes(protected.Group("/teams"))
	opportunityHandler.RegisterRoutes(protected.Group("/opportunities"))
}
