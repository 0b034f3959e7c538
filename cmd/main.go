// Promptforge API server
//
// This application is the backend for the Promptforge browser extension. It
// turns highlighted text into rewritten prompts, explanations, captions,
// personas and follow-up suggestions through an OpenAI-compatible upstream,
// and meters every paid feature against a per-user credit balance stored in
// MongoDB.
//
// CLI Usage:
//
//	The application supports the following command-line flags:
//
//	--addr=":8080"
//	  Address for the HTTP server to listen on.
//	  Example: ./promptforge --addr=":9000"
//
//	--disable-auth
//	  Skips the MongoDB connection and runs with the credit backend
//	  disabled: every feature request is admitted without charge.
//	  Example: ./promptforge --disable-auth
//
// Environment Variables:
//   - OPENAI_API_KEY: API key for the chat-completions upstream
//   - OPENAI_BASE_URL: Upstream base URL (default https://api.openai.com/v1)
//   - OPENAI_DEFAULT_MODEL: Model used when a request names none
//   - MONGODB_URI: MongoDB connection string for the credit ledger
//   - MONGODB_DATABASE: Database name (default promptforge)
//   - SESSION_SECRET: HS256 secret for login session tokens
//   - VERIFICATION_SECRET: Secret sealing email verification tokens
//   - MAILGUN_DOMAIN / MAILGUN_API_KEY: Outbound email credentials
//   - FRONTEND_BASE_URL: Where verification pages link back to
//   - VERIFICATION_BASE_URL: Public base URL for verification links
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"promptforge/internal/app"
	"promptforge/internal/credits"
	"promptforge/internal/llm"
	"promptforge/internal/mail"
	"promptforge/internal/mongostore"
	"promptforge/pkg/utils"
)

// loadEnvFile loads environment variables from a .env file if present.
// It attempts to load from the current directory and parent directories
// up to the root directory.
func loadEnvFile() {
	// Try current directory first
	err := godotenv.Load()
	if err == nil {
		log.Println("Loaded environment variables from .env file in current directory")
		return
	}

	// Get the current working directory
	workDir, err := os.Getwd()
	if err != nil {
		log.Printf("Warning: Could not determine current directory: %v", err)
		return
	}

	// Try parent directories recursively
	for dir := workDir; dir != "/"; dir = filepath.Dir(dir) {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			err = godotenv.Load(envPath)
			if err == nil {
				log.Printf("Loaded environment variables from %s", envPath)
				return
			}
		}
	}

	log.Println("No .env file found. Using existing environment variables.")
}

// connectStore dials MongoDB. A failure is not fatal: the service starts in
// degraded mode where every feature request is admitted without charge.
func connectStore(ctx context.Context) credits.Store {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Println("MONGODB_URI not set, running with the credit backend disabled")
		return nil
	}

	database := utils.GetEnvWithDefault("MONGODB_DATABASE", "promptforge")

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	store, err := mongostore.Connect(dialCtx, uri, database)
	if err != nil {
		log.Printf("Warning: MongoDB connection failed: %v", err)
		log.Println("Continuing with the credit backend disabled - all requests admitted free")
		return nil
	}

	log.Printf("Connected to MongoDB database %q", database)
	return store
}

func main() {
	// Load environment variables from .env file
	loadEnvFile()

	addr := flag.String("addr", ":8080", "Address for the HTTP server to listen on")
	disableAuth := flag.Bool("disable-auth", false, "Run without the credit backend; all requests are admitted free")
	flag.Parse()

	// Create a context that will be canceled on program termination
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		cancel()
	}()

	var store credits.Store
	if *disableAuth {
		log.Println("Credit backend disabled by flag - all requests will be admitted free")
	} else {
		store = connectStore(ctx)
	}
	if closer, ok := store.(*mongostore.Store); ok {
		defer func() {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer closeCancel()
			if err := closer.Close(closeCtx); err != nil {
				log.Printf("Error closing MongoDB connection: %v", err)
			}
		}()
	}

	llmConfig := llm.GetConfig()
	if llmConfig.APIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set. Generation requests will fail until it is configured.")
	} else {
		log.Printf("Upstream API key loaded: %s", utils.MaskToken(llmConfig.APIKey))
	}

	mailgunDomain := os.Getenv("MAILGUN_DOMAIN")
	mailgunAPIKey := os.Getenv("MAILGUN_API_KEY")
	sender := mail.NewMailgunSender(mailgunDomain, mailgunAPIKey)
	if !sender.Configured() {
		log.Println("Warning: Mailgun credentials not set. Verification emails will fail until configured.")
	}

	a := app.NewApp(app.Options{
		Store:               store,
		Completer:           llm.NewService(llmConfig),
		Sender:              sender,
		Policy:              credits.FailOpen,
		SessionSecret:       utils.GetEnvWithDefault("SESSION_SECRET", "your-secret-key"),
		VerificationSecret:  os.Getenv("VERIFICATION_SECRET"),
		MailgunDomain:       mailgunDomain,
		MailgunAPIKey:       mailgunAPIKey,
		FrontendBaseURL:     utils.GetEnvWithDefault("FRONTEND_BASE_URL", "https://promptforge.app"),
		VerificationBaseURL: utils.GetEnvWithDefault("VERIFICATION_BASE_URL", "http://localhost:8080"),
	})

	// Start HTTP server with graceful shutdown
	server := &http.Server{
		Addr:    *addr,
		Handler: a.Router,
	}

	// Start the server in a goroutine
	go func() {
		log.Printf("Starting server on %s...", *addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	// Create a deadline for server shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server gracefully stopped")
	}
}
