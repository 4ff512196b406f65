package main

import (
	"log"

	"github.com/group8-health/health/internal"
	"github.com/group8-health/health/internal/api"
	"github.com/group8-health/health/internal/auth"
	"github.com/group8-health/health/internal/beds"
	"github.com/group8-health/health/internal/config"
	"github.com/group8-health/health/internal/notify"
	"github.com/group8-health/health/internal/predict"
	"github.com/group8-health/health/internal/scheduling"
	"github.com/group8-health/health/internal/search"
	"github.com/group8-health/health/internal/storage"
)

// app wires the composed dependencies behind the api.App interface.
type app struct {
	logger   internal.Logger
	profiles storage.ProfileRepository
	vitals   storage.VitalsRepository
	appts    storage.AppointmentRepository
	pred     predict.Predictor
	roster   *scheduling.Roster
	ledgers  *scheduling.Ledgers
	beds     *beds.Inventory
	search   *search.Client
	mailer   notify.Mailer
}

func (a *app) Logger() internal.Logger                       { return a.logger }
func (a *app) Profiles() storage.ProfileRepository           { return a.profiles }
func (a *app) Vitals() storage.VitalsRepository              { return a.vitals }
func (a *app) Appointments() storage.AppointmentRepository   { return a.appts }
func (a *app) Predictor() predict.Predictor                  { return a.pred }
func (a *app) Roster() *scheduling.Roster                    { return a.roster }
func (a *app) Ledgers() *scheduling.Ledgers                  { return a.ledgers }
func (a *app) Beds() *beds.Inventory                         { return a.beds }
func (a *app) Search() *search.Client                        { return a.search }
func (a *app) Mailer() notify.Mailer                         { return a.mailer }

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	var (
		profiles storage.ProfileRepository
		vitals   storage.VitalsRepository
		appts    storage.AppointmentRepository
	)
	switch cfg.DBType {
	case "postgres":
		profiles, vitals, appts, err = storage.NewPostgresRepositories(cfg.DBDSN, logger)
	default:
		profiles, vitals, appts, err = storage.NewFileRepositories(cfg.FileProfiles, cfg.FileVitals, cfg.FileAppts, logger)
	}
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	roster, err := scheduling.LoadRoster(cfg.RosterFile)
	if err != nil {
		logger.Fatalf("failed to load doctor roster: %v", err)
	}

	inventory, err := beds.LoadInventory(cfg.BedsFile)
	if err != nil {
		logger.Fatalf("failed to load bed capacities: %v", err)
	}

	var predictor predict.Predictor
	if cfg.ModelMode == "remote" {
		predictor = predict.NewRemoteModel(cfg.ModelURL, logger)
	} else {
		predictor, err = predict.NewLocalModel(cfg.ModelFile, logger)
		if err != nil {
			logger.Fatalf("failed to load risk model: %v", err)
		}
	}

	var mailer notify.Mailer
	if cfg.SMTPFrom != "" && cfg.SMTPPassword != "" {
		mailer = notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPPassword, logger)
	} else {
		mailer = notify.NewNopMailer(logger)
	}

	var provider auth.Provider
	if cfg.Env == "development" {
		provider = auth.NewLocalAuthProvider(profiles, logger)
	} else {
		provider = auth.NewJWTAuthProvider(cfg.JWTSecret, profiles, logger)
	}

	a := &app{
		logger:   logger,
		profiles: profiles,
		vitals:   vitals,
		appts:    appts,
		pred:     predictor,
		roster:   roster,
		ledgers:  scheduling.NewLedgers(),
		beds:     inventory,
		search:   search.NewClient(cfg.SearchAPIKey, cfg.SearchEngineID, logger),
		mailer:   mailer,
	}

	router := api.NewRouter(a, auth.AuthMiddleware(provider, cfg), []string{"http://localhost:3000"})

	logger.Infof("server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
