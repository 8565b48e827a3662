package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fitcalc/internal/tracker"
)

// config is read once at startup from .env and the environment.
type config struct {
	Host        string
	Port        string
	DBURL       string // PostgreSQL; SQLite is used when empty
	SQLitePath  string
	CORSOrigins []string
}

func loadConfig() config {
	cfg := config{
		Host:        os.Getenv("HOST"),
		Port:        os.Getenv("PORT"),
		DBURL:       os.Getenv("DB_URL"),
		SQLitePath:  tracker.DefaultPath(),
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	return cfg
}

func (c config) addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// splitOrigins parses a comma-separated origin list. Empty means any origin.
func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func main() {
	log.SetPrefix("fitcalc: ")
	log.SetFlags(log.LstdFlags)

	// .env is optional in production where the environment is set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env file loaded: %v", err)
	}
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := tracker.Open(ctx, cfg.DBURL, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("[main] open weight store: %v", err)
	}
	defer store.Close()
	if cfg.DBURL != "" {
		log.Printf("[main] weight store: postgres")
	} else {
		log.Printf("[main] weight store: sqlite %s", cfg.SQLitePath)
	}

	h := newHandler(store)
	srv := &http.Server{
		Addr:              cfg.addr(),
		Handler:           newServerHandler(h, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[main] shutdown: %v", err)
		}
	}()

	log.Printf("[main] listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("[main] server: %v", err)
	}
}
