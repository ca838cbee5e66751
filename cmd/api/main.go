package main

import (
	"fmt"
	"os"

	_ "storefront_tracking/docs"
	"storefront_tracking/internal/adapter/http/routes"
	"storefront_tracking/internal/config"
	"storefront_tracking/internal/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Storefront Tracking API
// @version         1.0
// @description     Consent-gated analytics dispatch and configurator pricing for the storefront.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	routes.Run(cfg)
}
