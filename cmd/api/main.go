// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"neonsky/internal/app"
	"neonsky/internal/config"
	"neonsky/internal/middleware"
)

var BuildVersion = "dev" // diisi saat ldflags

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] no .env file loaded: %v", err)
	}

	cfg := config.Load()

	a := app.New(cfg)
	a.Router.Use(middleware.RequestID)
	a.Router.Use(middleware.CORS)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("%s (%s) running on :%s", cfg.AppName, BuildVersion, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
