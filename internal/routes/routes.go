package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"LOTTO_USER-SERVICE/internal/handlers"
)

// SetupRoutes configures all application routes
func SetupRoutes(authHandler *handlers.AuthHandler, predictionsHandler *handlers.PredictionsHandler, healthHandler *handlers.HealthHandler) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/auth/register", authHandler.Register)
	http.HandleFunc("/auth/login", authHandler.Login)

	// Prediction history routes; /predictions/ also covers /predictions/count
	// and /predictions/{id}, dispatched inside the handler
	http.HandleFunc("/predictions", predictionsHandler.Predictions)
	http.HandleFunc("/predictions/", predictionsHandler.Predictions)

	// API documentation
	http.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Lotto user service is running."))
}
