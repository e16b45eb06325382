package main

import (
	"log"

	"github.com/shashiranjanraj/kirana/internal/server"

	// Import migrations so their init() funcs run and register themselves.
	_ "github.com/shashiranjanraj/kirana/database/migrations"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
