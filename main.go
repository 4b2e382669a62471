package main

import (
	"log"

	"github.com/thiagokokada/branchy/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		log.Fatalf("branchy: %v", err)
	}
}
