package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// CompanySeed names one company to register at startup.
type CompanySeed struct {
	ID   string
	Name string
}

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	// RateLimit uses the ulule/limiter formatted notation, e.g. "100-M"
	// for 100 requests per minute per client IP.
	RateLimit string
	Companies []CompanySeed
}

// defaultCompanies mirrors the two companies the product historically
// shipped with; COMPANIES overrides them with any number of id:name pairs.
const defaultCompanies = "company_1:Tech Solutions Ltd,company_2:Consulting Partners Ltd"

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("COMPANIES", defaultCompanies)

	viper.AutomaticEnv()

	cfg := &Config{
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
	}

	companies, err := parseCompanies(viper.GetString("COMPANIES"))
	if err != nil {
		return nil, err
	}
	cfg.Companies = companies

	return cfg, nil
}

// parseCompanies parses a comma-separated list of id:name pairs.
func parseCompanies(raw string) ([]CompanySeed, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("COMPANIES must list at least one id:name pair")
	}

	pairs := strings.Split(raw, ",")
	seeds := make([]CompanySeed, 0, len(pairs))
	seen := make(map[string]struct{}, len(pairs))
	for _, pair := range pairs {
		id, name, found := strings.Cut(strings.TrimSpace(pair), ":")
		id = strings.TrimSpace(id)
		name = strings.TrimSpace(name)
		if !found || id == "" || name == "" {
			return nil, fmt.Errorf("invalid COMPANIES entry %q, expected id:name", pair)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate company id %q in COMPANIES", id)
		}
		seen[id] = struct{}{}
		seeds = append(seeds, CompanySeed{ID: id, Name: name})
	}
	return seeds, nil
}
