package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"foodfront/configs"
	"foodfront/middlewares"
	"foodfront/pkg/logger"
	"foodfront/pkg/shutdown"
	"foodfront/routes"
	"foodfront/ws"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := configs.LoadConfig()
	logg := logger.New(logger.Options{Service: "foodfront", Level: "info"})

	if err := configs.ConnectionDB(cfg.DBSource); err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}
	if err := configs.SeedDemoUser(); err != nil {
		log.Fatalf("seed demo user failed: %v", err)
	}
	if err := configs.SeedRestaurants(); err != nil {
		log.Fatalf("seed restaurants failed: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, configs.DB(), cfg, hub)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.Info("server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		stopCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		return srv.Shutdown(stopCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
