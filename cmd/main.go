package main

import (
	"context"
	"log"
	"os"

	"github.com/Neurokami/proyecto-infra/cmd/server"
	"github.com/Neurokami/proyecto-infra/internal/auth"
	"github.com/Neurokami/proyecto-infra/internal/config"
	"github.com/Neurokami/proyecto-infra/internal/storage"
)

func main() {
	log.SetFlags(log.Ldate | log.Llongfile)

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal(err)
	}

	db, err := storage.NewPostgresDB(cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}

	if err := storage.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	srv := server.NewServer(&server.ServerConfig{
		Addr: cfg.ServerAddr,
		DB:   db,
		TokenManager: auth.NewTokenService(
			cfg.Session.TokenSecret,
			cfg.Session.TokenExpiryInSecs,
		),
	},
	)
	srv.Run()
}
