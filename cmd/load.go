package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"school-onboarding/core/config"
	"school-onboarding/core/database"
	"school-onboarding/core/logger"
	"school-onboarding/core/storage"
	"school-onboarding/feature/onboarding"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	excelPath   string
	objectName  string
	mysqlDSN    string
	reportToOut bool
)

// loadCmd runs one load pass from a workbook into the database.
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load an onboarding workbook into the database",
	Long: `Run one load pass: read the workbook's sheets in dependency order,
resolve foreign keys by natural key, and upsert every row.

Row-level failures (malformed rows, unresolved references, rejected writes)
are reported but do not fail the command; a missing required sheet or an
unreachable database does.

Examples:
  # Load a local workbook
  school-onboarding load --excel SchoolOnboardingTemplates.xlsx

  # Load a workbook stored in the configured bucket
  school-onboarding load --object templates/school-a.xlsx

  # Override the configured database
  school-onboarding load --excel data.xlsx --mysql "user:pass@tcp(localhost:3306)/schooldb?parseTime=True"`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&excelPath, "excel", "", "Path to the onboarding workbook (.xlsx)")
	loadCmd.Flags().StringVar(&objectName, "object", "", "Workbook object name in the configured storage bucket")
	loadCmd.Flags().StringVar(&mysqlDSN, "mysql", "", "MySQL DSN (overrides configured database)")
	loadCmd.Flags().BoolVar(&reportToOut, "json", true, "Print the load report as JSON on stdout")

	RootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if excelPath == "" && objectName == "" {
		return fmt.Errorf("either --excel or --object is required")
	}
	if mysqlDSN != "" {
		cfg.Database.DSN = mysqlDSN
	}

	path := excelPath
	if objectName != "" {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		fetched, err := storage.FetchWorkbook(ctx, client, cfg.Storage.Bucket, objectName)
		if err != nil {
			return err
		}
		defer os.Remove(fetched)
		path = fetched
		l.Info("Fetched workbook from storage",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", objectName),
		)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}

	l.Info("Starting load", zap.String("workbook", path))
	report, runErr := onboarding.NewService(db, l).Load(ctx, path)

	if report != nil && reportToOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	l.Info("Load complete", zap.Int("row_failures", report.TotalFailed()))
	return nil
}
