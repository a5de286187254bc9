package main

import (
	"context"
	"log"
	"net/http"

	"geostory-backend/config"
	"geostory-backend/controllers/httpcors"
	"geostory-backend/controllers/stories"
	"geostory-backend/migrations"
	"geostory-backend/storage"
)

func main() {
	cfg := config.LoadConfig()

	if err := config.InitDB(cfg); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	log.Println("Database connection established")

	sqlDB, err := config.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get connection pool: %v", err)
	}
	if err := migrations.Run(context.Background(), sqlDB); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
	log.Println("Database schema up to date")

	store := storage.NewGormStoryStore(config.DB)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("POST /api/stories/{$}", func(w http.ResponseWriter, r *http.Request) {
		stories.CreateStory(w, r, store)
	})
	mux.HandleFunc("GET /api/stories/{$}", func(w http.ResponseWriter, r *http.Request) {
		stories.ListStories(w, r, store)
	})
	mux.HandleFunc("GET /api/stories/{id}", func(w http.ResponseWriter, r *http.Request) {
		stories.GetStory(w, r, store)
	})
	mux.HandleFunc("PATCH /api/stories/{id}", func(w http.ResponseWriter, r *http.Request) {
		stories.UpdateStory(w, r, store)
	})
	mux.HandleFunc("DELETE /api/stories/{id}", func(w http.ResponseWriter, r *http.Request) {
		stories.DeleteStory(w, r, store)
	})
	mux.HandleFunc("POST /api/stories/{id}/photos", func(w http.ResponseWriter, r *http.Request) {
		stories.AddPhoto(w, r, store)
	})

	handler := httpcors.CorsSettings(cfg.CORSOrigins).Handler(mux)

	log.Printf("Server listening on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status": "ok"}`))
}
