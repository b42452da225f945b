package main

import (
	"context"
	"flag"
	"os"
	"time"

	"askgemini/internal/api"
	"askgemini/internal/assistant"
	"askgemini/internal/config"
	"askgemini/internal/db"
	"askgemini/internal/gemini"
	"askgemini/internal/httpclient"
	"askgemini/internal/keys"
	"askgemini/internal/middleware"
	"askgemini/internal/server"
	"askgemini/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const pruneInterval = time.Hour

func main() {
	// --- Configuration ---
	configPath := flag.String("config", "askgemini.yaml", "path to the configuration file")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	configureLogger(log, cfg.Log)

	// --- Forwarder ---
	httpClient, err := httpclient.New(cfg.Gemini.Timeout, cfg.Gemini.PingInterval)
	if err != nil {
		log.Fatalf("Failed to create HTTP client: %v", err)
	}
	geminiClient, err := gemini.NewClient(cfg.Gemini.URL, httpClient, log)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	catalog, err := assistant.Catalog(cfg.Messages.Locale)
	if err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}
	messages := catalog.Merge(assistant.Messages{
		RateLimited:  cfg.Messages.RateLimited,
		Unauthorized: cfg.Messages.Unauthorized,
		BadRequest:   cfg.Messages.BadRequest,
		Generic:      cfg.Messages.Generic,
	})
	rotator := keys.NewRotator(cfg.Gemini.Keys()...)
	forwarder := assistant.NewForwarder(geminiClient, rotator, messages, log)

	log.WithFields(logrus.Fields{
		"keys":   rotator.Len(),
		"url":    geminiClient.URL(),
		"locale": cfg.Messages.Locale,
	}).Info("Gemini forwarder configured")

	// --- Exchange log ---
	var history api.History
	if cfg.Store.Path != "" {
		database, err := db.InitDB(cfg.Store.Path)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.CloseDB(database)

		exchanges := store.NewExchangeStore(database)
		history = exchanges
		if cfg.Store.Retention > 0 {
			go pruneLoop(exchanges, cfg.Store.Retention, log)
		}
	}

	// --- HTTP Server ---
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))
	api.NewAskAPI(forwarder, history, log).Routes(r)

	srv := server.New(cfg.Server, r, log)
	srv.Run()
}

func configureLogger(log *logrus.Logger, cfg config.Log) {
	if cfg.Format == "text" {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

func pruneLoop(s *store.ExchangeStore, retention time.Duration, log *logrus.Logger) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()
	for {
		deleted, err := s.Prune(context.Background(), retention)
		if err != nil {
			log.WithError(err).Error("Failed to prune exchanges")
		} else if deleted > 0 {
			log.Infof("Pruned %d exchanges older than %s", deleted, retention)
		}
		<-ticker.C
	}
}
