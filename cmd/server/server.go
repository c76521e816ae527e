package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/Neurokami/proyecto-infra/internal/auth"
	"github.com/Neurokami/proyecto-infra/internal/features/product"
	"github.com/Neurokami/proyecto-infra/internal/features/sale"
	"github.com/Neurokami/proyecto-infra/internal/features/vendor"
	"github.com/Neurokami/proyecto-infra/internal/middlewares"
)

type ServerConfig struct {
	Addr         string
	DB           *sql.DB
	TokenManager *auth.TokenService
}

type server struct {
	*ServerConfig

	srv *http.Server
}

func NewServer(serverConfig *ServerConfig) *server {
	return &server{
		ServerConfig: serverConfig,
	}
}

func (s *server) Run() {
	router := chi.NewRouter()

	// strip trailing slashes at the end of the url
	// e.g. /api/productos/ -> /api/productos
	router.Use(chimiddleware.StripSlashes)
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Mount("/api", s.apiRouter())

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.Addr),
		Handler: router,
	}

	// start server and listen for [os.Signal] signals to graceful shutdown server.
	s.listenAndServe()
}

func (s *server) listenAndServe() {
	shutdownCtx, shutdownCancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer shutdownCancel()

	errGrp, shutdownCtx := errgroup.WithContext(shutdownCtx)

	errGrp.Go(
		func() error {
			log.Printf("server started and is listening at port %s...\n", s.Addr)

			if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) && err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			return nil
		},
	)

	errGrp.Go(
		func() error {
			<-shutdownCtx.Done() // block and listen shutdown signals
			println()
			log.Println("hold and wait, server is gracefully shutting down...")

			ctx, cancel := context.WithTimeout(
				context.Background(),
				(20 * time.Second),
			)
			defer cancel()

			log.Println("server has stopped receiving new requests")
			log.Println("waiting for all pending requests to finish....")
			if err := s.srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server failed shutdown gracefully: %w", err)
			}

			return nil
		},
	)

	if err := errGrp.Wait(); err != nil {
		log.Fatal(err.Error())
	}
	log.Println("all pending requests completed!")

	log.Println("closing other resources...")
	if err := s.DB.Close(); err != nil {
		log.Println("server failed to close db for shutdown")
	}

	log.Println("server has been gracefully shutdown")
	os.Exit(0)
}

func (s *server) apiRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlewares.CORS)
	r.MethodNotAllowed(middlewares.MethodNotAllowedHandler())

	// health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// middleware
	middleware := middlewares.NewMiddleware(
		s.TokenManager,
	)

	// vendor feature
	vendorStore := vendor.NewStore(s.DB)
	vendorService := vendor.NewService(vendorStore)
	vendorHandler := vendor.NewHandler(
		vendorService,
		s.TokenManager,
		middleware,
	)
	vendorHandler.RegisterRoutes(r)

	// product feature
	productStore := product.NewStore(s.DB)
	productService := product.NewService(
		productStore,
		vendorService,
	)
	productHandler := product.NewHandler(
		productService,
		middleware,
	)
	productHandler.RegisterRoutes(r)

	// sale feature
	saleStore := sale.NewStore(s.DB)
	saleService := sale.NewService(saleStore)
	saleHandler := sale.NewHandler(
		saleService,
		middleware,
	)
	saleHandler.RegisterRoutes(r)

	return r
}
