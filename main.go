package main

import (
	"flag"
	"log"

	"bunnyrun/internal/config"
	"bunnyrun/internal/game"
)

func main() {
	configPath := flag.String("config", "bunnyrun.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}
	if err := game.RunDesktop(cfg); err != nil {
		log.Fatalf("[Game] %v", err)
	}
}
