package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nhalm/canonlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stockboard/stockboard/internal/api"
	"github.com/stockboard/stockboard/internal/models"
	"github.com/stockboard/stockboard/internal/repository"
	"github.com/stockboard/stockboard/internal/seed"
	"github.com/stockboard/stockboard/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to run the server on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind the server to")
	serveCmd.Flags().Int("page-size", service.DefaultPageSize, "Products per page")
	serveCmd.Flags().String("catalog", "", "JSON catalog to load instead of the generated one")
	_ = viper.BindPFlag("PORT", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("HOST", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("PAGE_SIZE", serveCmd.Flags().Lookup("page-size"))
	_ = viper.BindPFlag("CATALOG_FILE", serveCmd.Flags().Lookup("catalog"))
}

func runServe(_ *cobra.Command, _ []string) error {
	logLevel := viper.GetString("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logFormat := viper.GetString("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}
	canonlog.SetupGlobalLogger(logLevel, logFormat)

	host := viper.GetString("HOST")
	port := viper.GetInt("PORT")
	addr := fmt.Sprintf("%s:%d", host, port)

	products, err := loadCatalog()
	if err != nil {
		return err
	}

	// Store
	productStore := service.NewProductStore(
		repository.NewProductRepository(),
		service.WithPageSize(viper.GetInt("PAGE_SIZE")),
		service.WithNotifier(service.NewLogNotifier(slog.Default())),
	)
	if err := productStore.Seed(products); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	slog.Info("catalog loaded", "products", len(products))

	// Handler
	handler := api.NewHandler(productStore)

	// Unset values fall back to api.DefaultRouteConfig.
	routeConfig := api.RouteConfig{
		ReadRPS:        viper.GetInt("RATE_LIMIT_READ_RPS"),
		WriteRPS:       viper.GetInt("RATE_LIMIT_WRITE_RPS"),
		MaxBodyBytes:   viper.GetInt64("MAX_REQUEST_BODY_BYTES"),
		RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		AllowedOrigins: api.ParseAllowedOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
	}

	srv := &http.Server{
		Addr:           addr,
		Handler:        handler.RoutesWithConfig(routeConfig),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1048576,
	}

	go func() {
		fmt.Printf("Server starting on %s\n", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	fmt.Println("Server stopped")
	return nil
}

func loadCatalog() ([]*models.Product, error) {
	if path := viper.GetString("CATALOG_FILE"); path != "" {
		return seed.LoadFile(path)
	}
	return seed.Generate(seed.NewRand(viper.GetUint64("SEED")), time.Now().UTC()), nil
}
