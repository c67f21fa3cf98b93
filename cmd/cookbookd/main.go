package main

import (
	"log"

	"github.com/devdonalds/cookbook/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
