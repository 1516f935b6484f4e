package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every trip and item to a backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, out)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default: wanderlust-backup-{date}.json in the current directory)")

	return cmd
}

func runExport(cmd *cobra.Command, out string) error {
	ctx := cmd.Context()

	svc, pool, err := newTransferService(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	backup, err := svc.ExportBackup(ctx)
	if err != nil {
		return fmt.Errorf("export backup: %w", err)
	}

	if out == "" {
		out = svc.BackupFileName()
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	fmt.Printf("Exported %d trips and %d items to %s\n", len(backup.Trips), len(backup.Items), out)
	return nil
}

func newImportCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the entire store with a backup file",
		Long:  "Replace every trip and item in the database with the contents of a backup file. This is destructive: existing data is deleted first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}

func runImport(cmd *cobra.Command, path string, force bool) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	if !force && !confirm("This replaces ALL existing trips and items. Continue? [y/N] ") {
		fmt.Println("Aborted.")
		return nil
	}

	ctx := cmd.Context()

	svc, pool, err := newTransferService(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := svc.ImportBackup(ctx, payload); err != nil {
		return fmt.Errorf("import backup: %w", err)
	}

	fmt.Println("Backup imported.")
	return nil
}

// confirm prints prompt and reads a single line from stdin.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	return answer == "y" || answer == "Y" || answer == "yes"
}
