package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/songchart/api/cmd/api/commands"
)

// @title SongChart API
// @version 1.0
// @description CRUD over a flat-file collection of music chart records

// @host localhost:8000
// @BasePath /api/v1

func main() {
	rootCmd := &cobra.Command{
		Use:   "songchart",
		Short: "SongChart API Server",
		Long:  `SongChart serves create, read, update and delete operations over a JSON file of music chart records.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewSongsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
