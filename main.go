package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kuest/kuestionnaire/app"
	"github.com/kuest/kuestionnaire/config"
	"github.com/kuest/kuestionnaire/database"
	"github.com/kuest/kuestionnaire/httpx"
	"github.com/kuest/kuestionnaire/log"
	"github.com/kuest/kuestionnaire/routes"
	"github.com/kuest/kuestionnaire/session"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	if cfg.AdminPassword != "" {
		err = database.EnsureAdminUser(context.Background(), db, cfg.AdminPassword)
		if err != nil {
			log.Fatal("main.db.admin_user:", err)
		}
	}

	bearerServer := httpx.NewBearerServer(db, cfg)

	sessions := session.NewRegistry(cfg.SessionTTL)
	defer sessions.Close()

	app := app.App{
		DB:           db,
		BearerServer: bearerServer,
		Config:       cfg,
	}

	handler := routes.Wire(app, sessions)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
