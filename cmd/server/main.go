package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/dailyjournal-app/daily-journal/internal/config"
	"github.com/dailyjournal-app/daily-journal/internal/database"
	"github.com/dailyjournal-app/daily-journal/internal/handlers"
	"github.com/dailyjournal-app/daily-journal/internal/jwt"
	"github.com/dailyjournal-app/daily-journal/internal/middleware"
	"github.com/dailyjournal-app/daily-journal/internal/routes"
	"github.com/dailyjournal-app/daily-journal/internal/services"
	"github.com/dailyjournal-app/daily-journal/internal/storage"
	"github.com/dailyjournal-app/daily-journal/internal/storage/memory"
	"github.com/dailyjournal-app/daily-journal/internal/storage/mongodb"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if !cfg.IsProduction() {
		log.Println("⚠️  Running in development mode")
	}

	var userStore storage.UserStorage
	var entryStore storage.EntryStorage

	if cfg.StoreDriver == "memory" {
		// Local runs without MongoDB; everything is lost on restart.
		log.Println("⚠️  Using in-memory store (STORE_DRIVER=memory), data is not persisted")
		store := memory.New()
		userStore, entryStore = store, store
	} else {
		log.Printf("Connecting to MongoDB...")
		if err := database.Connect(cfg.MongoURI); err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer database.Disconnect()

		store := mongodb.New(database.DB)

		indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := store.EnsureIndexes(indexCtx); err != nil {
			log.Printf("⚠️  WARNING: failed to ensure MongoDB indexes: %v", err)
		} else {
			log.Println("✅ MongoDB indexes ensured")
		}
		cancel()

		userStore, entryStore = store, store
	}

	// Connect to Redis (journal list cache); the app works without it
	var cache *services.JournalCache
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Printf("Warning: Redis unavailable, journal list caching disabled: %v", err)
	} else {
		defer database.DisconnectRedis()
		cache = services.NewJournalCache(database.RedisClient)
	}

	tokens := jwt.NewService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userStore, tokens)
	journalService := services.NewJournalService(entryStore, cache)

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r,
		handlers.NewAuthHandler(authService),
		handlers.NewJournalHandler(journalService),
		middleware.Auth(tokens),
	)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/auth/register")
	log.Println("  POST /api/auth/login")
	log.Println("  POST /api/journals")
	log.Println("  GET  /api/journals")
	log.Println("  PUT  /api/journals/{id}")
	log.Println("  DELETE /api/journals/{id}")

	log.Printf("🚀 Daily Journal backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
