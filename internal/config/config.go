package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Storage struct {
	AccountsFile     string `yaml:"accounts_file"`
	TransactionsFile string `yaml:"transactions_file"`
}

type Currency struct {
	Symbol string `yaml:"symbol"`
}

type Log struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

type Config struct {
	Storage  Storage  `yaml:"storage"`
	Currency Currency `yaml:"currency"`
	Log      Log      `yaml:"log"`
}

// Load reads the optional config file, then applies environment overrides.
// A missing config file or .env is not an error; defaults cover everything.
func Load(path string) Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file, using system environment variables")
	}

	cfg := Config{
		Storage:  Storage{AccountsFile: "accounts.txt", TransactionsFile: "transactions.txt"},
		Currency: Currency{Symbol: "₹"},
		Log:      Log{Level: "info"},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Failed to parse config file %s: %v", path, err)
		}
	}

	applyEnv(&cfg.Storage.AccountsFile, "LEDGER_ACCOUNTS_FILE")
	applyEnv(&cfg.Storage.TransactionsFile, "LEDGER_TRANSACTIONS_FILE")
	applyEnv(&cfg.Currency.Symbol, "LEDGER_CURRENCY_SYMBOL")
	applyEnv(&cfg.Log.Level, "LEDGER_LOG_LEVEL")

	return cfg
}

func applyEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
