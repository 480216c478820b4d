package api

import (
	"net/http"
	"time"

	handlers "tracker/src/api/handlers"
	"tracker/src/config"
	"tracker/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router    *chi.Mux
	Handler   handlers.Handler
	TokenAuth *jwtauth.JWTAuth
	Logger    *logrus.Logger
}

func NewServer(cfg *config.Config) (*Server, error) {
	handler, err := handlers.NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	server := &Server{
		Router:    chi.NewRouter(),
		Handler:   *handler,
		TokenAuth: jwtauth.New("HS256", []byte(cfg.Auth.Secret), nil),
		Logger:    utils.NewLogger(logrus.InfoLevel, false, ""),
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(cors.AllowAll().Handler)
	s.Router.Use(s.requestLogger)

	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Post("/api/token", s.Handler.PostToken)

	s.Router.Route("/api/assets", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllAssets)
		r.Get("/{id}", s.Handler.GetAssetByID)
	})

	s.Router.Route("/api/holdings", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllHoldings)
		r.Get("/{id}", s.Handler.GetHoldingByID)

		// Trades mutate money and require a bearer token
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(s.TokenAuth))
			r.Use(jwtauth.Authenticator)
			r.Post("/buy", s.Handler.BuyAsset)
			r.Post("/sell", s.Handler.SellHolding)
		})
	})

	s.Router.Get("/api/transactions", s.Handler.GetAllTransactions)
	s.Router.Get("/api/settlements", s.Handler.GetSettlement)
	s.Router.Get("/api/networth", s.Handler.GetNetWorthHistory)

	s.Router.Route("/api/portfolio", func(r chi.Router) {
		r.Get("/summary", s.Handler.GetPortfolioSummary)
		r.Get("/report", s.Handler.GetPortfolioReport)
	})
}

// requestLogger tags every request with an id and puts the logger in the
// context for the layers below.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		// Log lines emitted by services during this request carry the id too
		requestLogger := s.Logger.WithField("request_id", requestID)
		ctx := utils.WithLogger(r.Context(), requestLogger)
		next.ServeHTTP(w, r.WithContext(ctx))

		requestLogger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
