package main

import (
	_ "buffet_pizzas/docs"
	"buffet_pizzas/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Forno & Festa Buffet API
// @version         1.0
// @description     Back office do buffet de pizzas: orçamentos, reservas, contratos, recibos e entrada via Mercado Pago.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
