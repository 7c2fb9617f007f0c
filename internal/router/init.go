package router

import (
	"github.com/EliyatMagar/websathi-new/internal/container"
	pginfra "github.com/EliyatMagar/websathi-new/internal/infrastructure/postgres"
	handlers "github.com/EliyatMagar/websathi-new/internal/interface/http"
	"github.com/EliyatMagar/websathi-new/internal/router/modules"
)

// InitModules constructs every feature module from the container singletons
// and registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	log := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool, log)
	blogRepo := pginfra.NewBlogRepository(pool, log)
	portfolioRepo := pginfra.NewPortfolioRepository(pool, log)
	videoRepo := pginfra.NewVideoRepository(pool, log)

	authHandler := handlers.NewAuthHandler(userRepo, container.GetJWT(), container.GetCookies(), log)
	blogHandler := handlers.NewBlogHandler(blogRepo, container.GetBlogIndex(), log)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioRepo, log)
	videoHandler := handlers.NewVideoHandler(videoRepo, log)
	contactHandler := handlers.NewContactHandler(
		container.GetMailgun(),
		container.GetRabbitPub(),
		cfg.ContactEmail,
		cfg.SiteOwnerName,
		log,
	)
	uploadHandler := handlers.NewUploadHandler(container.GetGCS(), cfg.GCSBucket, cfg.UploadsDir, log)
	healthHandler := handlers.NewHealthHandler(pool, cfg.Env)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewBlogModule(blogHandler))
	r.Add(modules.NewPortfolioModule(portfolioHandler))
	r.Add(modules.NewVideoModule(videoHandler))
	r.Add(modules.NewContactModule(contactHandler))
	r.Add(modules.NewUploadModule(uploadHandler))
	r.Add(modules.NewHealthModule(healthHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
