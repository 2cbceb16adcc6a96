package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mechserve/config"
	"mechserve/database"
	bookingRepo "mechserve/database/repository/booking"
	contactRepo "mechserve/database/repository/contact"
	"mechserve/handlers"
	"mechserve/routes"
	"mechserve/services/booking"
	"mechserve/services/contact"
	"mechserve/services/notification"
	"mechserve/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// A missing SMTP configuration yields a disabled notifier; the server
	// keeps serving persistence traffic either way.
	notifier := notification.NewMailer(config.AppConfig)
	if _, disabled := notifier.(notification.Disabled); disabled {
		logger.Warn("main: SMTP not configured, notification mail disabled")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bkgRepo := bookingRepo.NewMongoBookingRepo()
	ctcRepo := contactRepo.NewMongoContactRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:     bkgRepo,
		Notifier: notifier,
	}
	contactService := &contact.DefaultContactService{
		Repo:     ctcRepo,
		Notifier: notifier,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler, contactHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
