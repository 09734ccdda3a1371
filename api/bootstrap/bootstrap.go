package bootstrap

import (
	"fmt"
	"sync"

	"github.com/paydemo/braintree-portal/api/config"
	app "github.com/paydemo/braintree-portal/api/services/braintree/app"
	btgw "github.com/paydemo/braintree-portal/api/services/braintree/gateway/braintree"
)

var service app.Service
var initOnce sync.Once
var initErr error

// Init initializes config and the Braintree gateway client, and wires the service.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if service != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	service = app.NewService(btgw.New(config.AppConfig))
	return nil
}

func GetService() app.Service { return service }

// SetService allows tests to inject a stub implementation.
func SetService(s app.Service) { service = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
