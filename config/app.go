package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool

	// Balancing thresholds, multiples of safety stock.
	PromoteFactor  float64
	ReduceFactor   float64
	SequenceFactor float64

	// Planning defaults used when a persona has no saved parameters.
	DefaultSafetyStock int64
	DefaultLeadTime    int64
	DefaultMOQ         int64

	// Quantity bought when a recommended action is approved.
	ApprovePurchaseQty int64

	// Requests per second allowed on /api (0 disables the limiter).
	RateLimit float64
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:            GetEnv("APP_NAME", "SupplySense"),
			Port:               GetEnv("PORT", "8080"),
			Env:                os.Getenv("APP_ENV"),
			Debug:              os.Getenv("DEBUG") == "true",
			PromoteFactor:      GetEnvFloat("BALANCE_PROMOTE_FACTOR", 3),
			ReduceFactor:       GetEnvFloat("BALANCE_REDUCE_FACTOR", 5),
			SequenceFactor:     GetEnvFloat("BALANCE_SEQUENCE_FACTOR", 0),
			DefaultSafetyStock: GetEnvInt("DEFAULT_SAFETY_STOCK", 150),
			DefaultLeadTime:    GetEnvInt("DEFAULT_LEAD_TIME", 5),
			DefaultMOQ:         GetEnvInt("DEFAULT_MOQ", 200),
			ApprovePurchaseQty: GetEnvInt("APPROVE_PURCHASE_QTY", 100),
			RateLimit:          GetEnvFloat("API_RATE_LIMIT", 20),
		}
	})
}

// App returns the loaded config, loading it from the environment on first use.
func App() *Config {
	LoadAppConfig()
	return AppConfig
}
