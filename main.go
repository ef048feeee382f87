package main

import (
	"flag"
	"fmt"
	"os"

	"shopapi/cmd"
	"shopapi/config"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	app, err := cmd.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build application: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
