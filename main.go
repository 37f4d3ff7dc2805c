package main

import (
	// receipt time zones without a system tz database
	_ "time/tzdata"

	"pagamentos/cli"
)

// @title Pagamentos API
// @version 1.0
// @description Payment records per club and church, with search, spreadsheet export and PDF receipts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cli.Execute()
}
