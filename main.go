package main

import (
	"fmt"
	"log"

	"github.com/kovacs-trading/site/config"
	h "github.com/kovacs-trading/site/handlers"
	"github.com/kovacs-trading/site/nav"
	"github.com/kovacs-trading/site/server"
)

func main() {
	// Reject a broken menu configuration before serving anything
	if err := nav.Validate(); err != nil {
		log.Fatalf("invalid navigation configuration: %v", err)
	}

	// Initialize session store
	if err := h.InitSessionStore(); err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}

	app, err := server.New()
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	fmt.Printf("Starting server on port %s...\n", config.ServerPort)
	log.Fatal(app.Listen(":" + config.ServerPort))
}
