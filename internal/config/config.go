package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/okatev/shopflow/internal/domain/model"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	InventoryAddress    string
	NotificationAddress string
	TaxRate             float64
	MinOrderAmount      float64
	ShutdownTimeout     time.Duration
	DiscountCodes       map[string]model.DiscountCode
}

const (
	defaultRunAddress      = ":8080"
	defaultTaxRate         = 0.08
	defaultMinOrderAmount  = 10.0
	defaultShutdownTimeout = 10 * time.Second
)

func defaultDiscountCodes() map[string]model.DiscountCode {
	return map[string]model.DiscountCode{
		"SAVE10": {Type: model.DiscountTypePercentage, Value: 10, MinOrder: 50},
		"FLAT20": {Type: model.DiscountTypeFlat, Value: 20, MinOrder: 100},
		"BULK5":  {Type: model.DiscountTypePercentage, Value: 5, MinOrder: 200},
	}
}

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		InventoryAddress:    getString(lookup, "INVENTORY_ADDRESS", ""),
		NotificationAddress: getString(lookup, "NOTIFICATION_ADDRESS", ""),
		TaxRate:             getFloat(lookup, "TAX_RATE", defaultTaxRate),
		MinOrderAmount:      getFloat(lookup, "MIN_ORDER_AMOUNT", defaultMinOrderAmount),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		DiscountCodes:       defaultDiscountCodes(),
	}

	fs := flag.NewFlagSet("shopflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.InventoryAddress, "i", cfg.InventoryAddress, "Inventory service base URL")
	fs.StringVar(&cfg.NotificationAddress, "n", cfg.NotificationAddress, "Notification service base URL")
	fs.Float64Var(&cfg.TaxRate, "tax-rate", cfg.TaxRate, "Sales tax rate applied to orders")
	fs.Float64Var(&cfg.MinOrderAmount, "min-order", cfg.MinOrderAmount, "Minimum order total after discounts")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if codesFile, ok := lookup("DISCOUNT_CODES_FILE"); ok && codesFile != "" {
		content, err := os.ReadFile(codesFile)
		if err != nil {
			return nil, fmt.Errorf("read discount codes file: %w", err)
		}
		codes := map[string]model.DiscountCode{}
		if err := json.Unmarshal(content, &codes); err != nil {
			return nil, fmt.Errorf("parse discount codes file: %w", err)
		}
		cfg.DiscountCodes = codes
	}

	if cfg.TaxRate < 0 {
		cfg.TaxRate = defaultTaxRate
	}

	if cfg.MinOrderAmount < 0 {
		cfg.MinOrderAmount = defaultMinOrderAmount
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.InventoryAddress == "" {
		return nil, fmt.Errorf("inventory service address must be provided")
	}

	if cfg.NotificationAddress == "" {
		return nil, fmt.Errorf("notification service address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
