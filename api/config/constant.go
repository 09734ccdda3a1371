package config

import "log"

const (
	// EnvSandbox is the Braintree sandbox environment selector
	EnvSandbox = "sandbox"

	// EnvProduction is the Braintree production environment selector
	EnvProduction = "production"
)

// CheckNotProduction aborts immediately if the configured gateway environment
// is production. This should be called at the start of any test that talks to
// the Braintree gateway.
func CheckNotProduction() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Environment == EnvProduction {
		log.Fatalf("Tests aborted: BRAINTREE_ENVIRONMENT is set to %s", EnvProduction)
	}
}
