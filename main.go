package main

import (
	"log"
	"net/http"

	"clementus360/task-coach/config"
	"clementus360/task-coach/handlers"
	"clementus360/task-coach/llm"
	"clementus360/task-coach/middleware"
	"clementus360/task-coach/supabase"
)

func main() {

	config.InitLogger()
	config.LoadEnv()
	cfg := config.Load()

	gateway, err := supabase.New(cfg)
	if err != nil {
		config.Logger.Fatal("Failed to create Supabase gateway:", err)
	}

	h := handlers.New(gateway, llm.NewClient(cfg))

	mux := http.NewServeMux()

	mux.HandleFunc("POST /chat", h.Chat)
	mux.HandleFunc("GET /tasks", h.GetTasks)
	mux.HandleFunc("POST /tasks/create", h.CreateTask)
	mux.HandleFunc("PATCH /tasks/complete", h.CompleteTask)
	mux.HandleFunc("GET /history", h.GetHistory)
	mux.HandleFunc("GET /activity", h.GetActivity)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	log.Println("Server is running on port 8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
