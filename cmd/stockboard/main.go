// Package main is the entry point for the application.
//
// @title Stockboard API
// @version 1.0
// @description Inventory dashboard: filter, sort, paginate, select and edit products held in memory.
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
package main

import "github.com/stockboard/stockboard/cmd/stockboard/cmd"

func main() {
	cmd.Execute()
}
