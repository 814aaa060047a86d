package main

import (
	"log"

	"gestion-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
