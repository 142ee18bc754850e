package config

import "os"

// Config collects every credential and endpoint at startup. It is passed
// by value into the store gateway and generation client constructors so
// nothing inside the pipeline reads the environment directly.
type Config struct {
	SupabaseURL   string
	SupabaseKey   string
	GeminiAPIKey  string
	GeminiBaseURL string   // empty means the public Gemini endpoint
	GeminiModels  []string // empty means the default candidate list
}

func Load() Config {
	return Config{
		SupabaseURL:   os.Getenv("SUPABASE_URL"),
		SupabaseKey:   os.Getenv("SUPABASE_KEY"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
	}
}
