package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/songchart/api/internal/adapters/repository"
	"github.com/songchart/api/internal/domain/entities"
	"github.com/songchart/api/internal/infrastructure/config"
	"github.com/songchart/api/internal/infrastructure/logger"
	"github.com/songchart/api/internal/infrastructure/server"
)

// Version is overridden at build time with -ldflags
var Version = "dev"

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the SongChart API server",
		Long:  "Load the songs file and serve the songs API until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// NewSongsCommand creates the offline songs file commands
func NewSongsCommand() *cobra.Command {
	songsCmd := &cobra.Command{
		Use:   "songs",
		Short: "Inspect the songs file",
		Long:  "Read-only commands over the backing songs file",
	}

	var file string
	songsCmd.PersistentFlags().StringVar(&file, "file", "", "Songs file (defaults to SONGS_FILE or ./songs.json)")

	songsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every song in the file",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(file)
			if err != nil {
				return err
			}
			return printSongs(cmd.OutOrStdout(), catalog.Songs)
		},
	})

	songsCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the file and report duplicate IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(file)
			if err != nil {
				return err
			}
			return checkCatalog(cmd.OutOrStdout(), catalog)
		},
	})

	return songsCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print SongChart version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "SongChart %s\n", Version)
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()

	srv, err := server.New(cfg, appLogger)
	if err != nil {
		appLogger.WithError(err).Error("Failed to initialize server")
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Infow("Starting SongChart API server",
			"address", cfg.Server.Addr(),
			"environment", cfg.App.Environment,
			"songs_file", cfg.Storage.Path,
		)
		errCh <- srv.Start(cfg.Server.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.WithError(err).Error("Server failed")
		}
		return err
	case <-quit:
	}

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	appLogger.Info("Server exited gracefully")
	return nil
}

func loadCatalog(file string) (*entities.Catalog, error) {
	if file == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		file = cfg.Storage.Path
	}
	return repository.LoadCatalog(file)
}

func printSongs(w io.Writer, songs []entities.Song) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tARTIST\tGENRE\tPEAK\tWEEKS")
	for _, s := range songs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n", s.ID, s.Title, s.Artist, s.Genre, s.PeakPosition, s.WeeksOnChart)
	}
	return tw.Flush()
}

func checkCatalog(w io.Writer, catalog *entities.Catalog) error {
	dups := catalog.DuplicateIDs()
	if len(dups) > 0 {
		return fmt.Errorf("%d songs, duplicate ids: %v", len(catalog.Songs), dups)
	}
	fmt.Fprintf(w, "%d songs, no duplicate ids\n", len(catalog.Songs))
	return nil
}
