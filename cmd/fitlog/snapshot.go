package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hyperengineering/fitlog/internal/snapshot"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write a database snapshot",
	Long: `Write a consistent copy of the SQLite database into the snapshot directory
(FITLOG_SNAPSHOT_DIR). When FITLOG_SNAPSHOT_BUCKET is set the file is also
uploaded to S3-compatible storage and a pre-signed download URL is printed.`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()

	uploader, err := snapshot.NewUploader(cfg.Snapshot)
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := snapshot.NewService(db, uploader, cfg.Snapshot.Dir).Create(cmd.Context())
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	out := cmd.OutOrStdout()
	color.New(color.FgGreen).Fprintf(out, "✓ Snapshot written to %s\n", res.Path)
	if res.Uploaded {
		fmt.Fprintf(out, "  Uploaded as %s\n", res.ObjectKey)
		color.New(color.Faint).Fprintf(out, "  %s (expires %s)\n", res.URL, res.ExpiresAt.Format("2006-01-02 15:04 MST"))
	}
	return nil
}
