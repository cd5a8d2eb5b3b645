package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"home-media/core/config"
	"home-media/core/logger"
	"home-media/feature/torrents"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// torrentsCmd is the parent command for download manager operations.
var torrentsCmd = &cobra.Command{
	Use:   "torrents",
	Short: "Drive the transmission download manager",
}

var torrentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List current downloads as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTorrentService()
		if err != nil {
			return err
		}
		records, err := svc.List(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list torrents: %w", err)
		}
		return writeJSON(cmd.OutOrStdout(), records)
	},
}

var torrentsParseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse transmission-remote -l output from stdin",
	Long: `Parse a saved listing without contacting the daemon.

Example:
  transmission-remote -l | home-media torrents parse`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTorrentService()
		if err != nil {
			return err
		}
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		return writeJSON(cmd.OutOrStdout(), svc.Parse(string(raw)))
	},
}

var torrentsAddCmd = &cobra.Command{
	Use:   "add <magnet>",
	Short: "Add a magnet link to the download manager",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTorrentService()
		if err != nil {
			return err
		}
		out, err := svc.Add(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to add torrent: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	torrentsCmd.AddCommand(torrentsListCmd, torrentsParseCmd, torrentsAddCmd)
	RootCmd.AddCommand(torrentsCmd)
}

func newTorrentService() (*torrents.Service, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return torrents.NewFeature(cfg.Torrents, nil, l.With(zap.String("component", "cli"))).Service(), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
