//POST   /api/user/register        # Register (public)
//POST   /api/user/login           # Login (public)
//POST   /api/analyze              # Analyze lyrics, save song (auth)
//GET    /api/history              # List analyzed songs (auth)
//GET    /api/song/{id}            # One song with lines and vocab (auth)
//DELETE /api/song/{id}            # Delete song (auth)
//POST   /api/vocab/toggle_save/{id} # Toggle saved flag (auth)
//GET    /api/vocab/saved          # Saved vocab cards (auth)
//GET    /health                   # Liveness (public)

package api

import (
	"lyristudy/internal/app/server/api/http/health"
	"lyristudy/internal/app/server/api/http/middleware"
	"lyristudy/internal/app/server/api/http/middleware/auth"
	"lyristudy/internal/app/server/api/http/middleware/logger"
	songAPI "lyristudy/internal/app/server/api/http/song"
	userAPI "lyristudy/internal/app/server/api/http/user"
	vocabAPI "lyristudy/internal/app/server/api/http/vocab"
	"lyristudy/internal/app/server/config"
	"lyristudy/internal/domain/analysis"
	"lyristudy/internal/domain/quota"
	"lyristudy/internal/domain/song"
	"lyristudy/internal/domain/token"
	"lyristudy/internal/domain/user"
	"lyristudy/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *health.Handler
	User   *userAPI.Handler
	Song   *songAPI.Handler
	Vocab  *vocabAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, analyzer analysis.Analyzer, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaCfg := huma.DefaultConfig("LyriStudy API", "1.0.0")
	humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaCfg)

	h := handlers(storage, analyzer, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Song.SetupRoutes(API)
	h.Vocab.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, analyzer analysis.Analyzer, cfg *config.Config, log *slog.Logger) *Handlers {
	tokenService := token.NewService(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	authMW := auth.New(tokenService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := health.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, user.NewCredentialsValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, tokenService, log, middlewares.GetAllAndClear())

	quotaRepo := postgres.NewQuotaRepository(storage.Pool(), log)
	quotaService := quota.NewService(quotaRepo, cfg.Quota.DailyAnalysisLimit, log)

	songRepo := postgres.NewSongRepository(storage.Pool(), log)
	songService := song.NewService(songRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	songHandler := songAPI.NewHandler(songService, quotaService, analyzer, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	vocabHandler := vocabAPI.NewHandler(songService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Song:   songHandler,
		Vocab:  vocabHandler,
	}
}
