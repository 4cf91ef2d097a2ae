package v1

import (
	"log"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/portfolio"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/pkg/mailer"
	"career-compass/internal/repository"
	"career-compass/internal/scraper"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis, logger *log.Logger) {
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
	mail := mailer.New(cfg.SMTP, logger)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	roadmapRepo := repository.NewPostgresRoadmapRepository(db)
	portfolioRepo := repository.NewPostgresPortfolioRepository(db)
	trendingRepo := repository.NewPostgresTrendingRepository(db)

	portfolioGen, err := portfolio.NewGenerator()
	if err != nil {
		// Templates are compiled in; a parse failure is a programming error.
		panic(err)
	}

	authUC := usecase.NewAuthUsecase(userRepo, mail, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	careerUC := usecase.NewCareerUsecase()
	roadmapUC := usecase.NewRoadmapUsecase(roadmapRepo, profileRepo, c, logger)
	portfolioUC := usecase.NewPortfolioUsecase(portfolioGen, userRepo, profileRepo, portfolioRepo)
	trendingUC := usecase.NewTrendingUsecase(trendingRepo, scraper.NewTrendingScraper(trendingRepo, logger), c, logger)
	insightUC := usecase.NewInsightUsecase(scraper.NewLinkedInScraper(logger))

	authHandler := handler.NewAuthHandler(authUC)
	careerHandler := handler.NewCareerHandler(careerUC)
	trendingHandler := handler.NewTrendingHandler(trendingUC)
	profileHandler := handler.NewProfileHandler(profileUC, insightUC)
	roadmapHandler := handler.NewRoadmapHandler(roadmapUC)
	portfolioHandler := handler.NewPortfolioHandler(portfolioUC)

	authHandler.RegisterRoutes(r.Group("/auth"))
	careerHandler.RegisterRoutes(r.Group("/career"))
	trendingHandler.RegisterRoutes(r.Group("/trending"))

	protected := r.Group("", authMw.Middleware())
	protected.Get("/auth/me", authHandler.Me)
	profileHandler.RegisterRoutes(protected.Group("/profile"))
	roadmapHandler.RegisterRoutes(protected.Group("/roadmaps"))
	portfolioHandler.RegisterRoutes(protected.Group("/portfolio"))
}
