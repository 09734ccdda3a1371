package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	// Environment selects the Braintree environment: "production" or "sandbox".
	Environment string
	MerchantID  string
	PublicKey   string
	PrivateKey  string
	// DefaultCustomerID is the customer id surfaced by /api/config for the demo client.
	DefaultCustomerID string
	// Server port and browser asset directory
	HTTPPort  string
	StaticDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		// Check if .env file exists in current directory
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// Load .env file
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		// Move up one directory
		currentDir = filepath.Dir(currentDir)
	}

	// Get required environment variables
	requiredVars := []struct {
		name     string
		envVar   string
		display  string
		required bool
	}{
		{"MerchantID", "BRAINTREE_MERCHANT_ID", "Braintree Merchant ID", true},
		{"PublicKey", "BRAINTREE_PUBLIC_KEY", "Braintree Public Key", true},
		{"PrivateKey", "BRAINTREE_PRIVATE_KEY", "Braintree Private Key", true},
		// Optional gateway environment selector
		{"Environment", "BRAINTREE_ENVIRONMENT", "Braintree Environment", false},
		// Optional default customer id for the demo client
		{"DefaultCustomerID", "CUSTOMER_ID", "Default Customer ID", false},
		// Optional server settings
		{"HTTPPort", "PORT", "HTTP Port", false},
		{"StaticDir", "STATIC_DIR", "Static Asset Directory", false},
	}

	for _, v := range requiredVars {
		value := os.Getenv(v.envVar)
		if v.required && value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", v.display)
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Defaults
	if config.Environment != EnvProduction {
		config.Environment = EnvSandbox
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "3001"
	}
	if config.StaticDir == "" {
		config.StaticDir = "./public"
	}

	return config, nil
}
