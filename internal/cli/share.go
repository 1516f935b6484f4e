package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newShareCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "share <trip-id>",
		Short: "Package one trip as a share file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("trip id must be a positive integer, got %q", args[0])
			}
			return runShare(cmd, id, out)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default: wanderlust-trip-{slug}.json in the current directory)")

	return cmd
}

func runShare(cmd *cobra.Command, tripID int64, out string) error {
	ctx := cmd.Context()

	svc, pool, err := newTransferService(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	pkg, err := svc.ExportShare(ctx, tripID)
	if err != nil {
		return fmt.Errorf("export share: %w", err)
	}

	if out == "" {
		out = svc.ShareFileName(pkg.Trip)
	}

	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode share package: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write share package: %w", err)
	}

	fmt.Printf("Shared %q (%d items) to %s\n", pkg.Trip.Title, len(pkg.Items), out)
	return nil
}

func newImportShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-share <file>",
		Short: "Import a share file as a new trip",
		Long:  "Import a trip from a share file. The trip and its items are added under fresh ids; existing data is untouched.",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportShare,
	}
}

func runImportShare(cmd *cobra.Command, args []string) error {
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read share package: %w", err)
	}

	ctx := cmd.Context()

	svc, pool, err := newTransferService(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	trip, err := svc.ImportShare(ctx, payload)
	if err != nil {
		return fmt.Errorf("import share: %w", err)
	}

	fmt.Printf("Imported trip %q as id %d\n", trip.Title, trip.ID)
	return nil
}
