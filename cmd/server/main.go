package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"eventcollection/config"
	delivery "eventcollection/internal/delivery/http"
	"eventcollection/internal/delivery/http/controllers"
	"eventcollection/internal/delivery/http/middleware"
	"eventcollection/internal/repository/postgres"
	"eventcollection/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Event Collection API
// @version 1.0
// @description Event management backend: organizers, events, team members, sponsors, participants, feedback, and reports.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	organizerRepo := postgres.NewOrganizerRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	teamMemberRepo := postgres.NewTeamMemberRepository(db)
	sponsorRepo := postgres.NewSponsorRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)
	photoRepo := postgres.NewPhotoRepository(db)
	schemaRepo := postgres.NewSchemaRepository(db)

	organizerSvc := services.NewOrganizerService(organizerRepo, serviceTimeout)
	eventSvc := services.NewEventService(eventRepo, organizerRepo, serviceTimeout)
	teamMemberSvc := services.NewTeamMemberService(teamMemberRepo, organizerRepo, serviceTimeout)
	sponsorSvc := services.NewSponsorService(sponsorRepo, serviceTimeout)
	participantSvc := services.NewParticipantService(participantRepo, serviceTimeout)
	feedbackSvc := services.NewFeedbackService(feedbackRepo, eventRepo, serviceTimeout)
	photoSvc := services.NewPhotoService(photoRepo, serviceTimeout)
	schemaSvc := services.NewSchemaService(schemaRepo, serviceTimeout)

	mux := delivery.NewRouter(delivery.Controllers{
		Event:       controllers.NewEventController(logger, eventSvc),
		Organizer:   controllers.NewOrganizerController(logger, organizerSvc),
		TeamMember:  controllers.NewTeamMemberController(logger, teamMemberSvc),
		Sponsor:     controllers.NewSponsorController(logger, sponsorSvc),
		Participant: controllers.NewParticipantController(logger, participantSvc),
		Feedback:    controllers.NewFeedbackController(logger, feedbackSvc),
		Photo:       controllers.NewPhotoController(logger, photoSvc),
		Database:    controllers.NewDatabaseController(logger, schemaSvc),
	})

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
