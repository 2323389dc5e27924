package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"finaid-preflight/core/config"
	"finaid-preflight/core/database"
	"finaid-preflight/core/logger"
	"finaid-preflight/core/storage"
	"finaid-preflight/core/utils"
	"finaid-preflight/feature/preflight"
	"finaid-preflight/feature/preflight/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrChecksFailed signals that at least one required component is missing.
// The verification output already explains the failure, so Execute exits
// without logging it again.
var ErrChecksFailed = errors.New("some components are missing or incomplete")

var (
	jsonFlag    bool
	tableFlag   bool
	baseDirFlag string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the application structure",
	Long: `Checks that the base directory holds every required directory and file,
reports the advisory data file, and exits non-zero when a required component
is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runFullVerification(cmd.Context())
	},
}

// dirsCmd represents the verify dirs command
var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Check required directories only",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService()
		if err != nil {
			return err
		}
		printer := preflight.NewPrinter(os.Stdout)
		results := svc.CheckDirectories()
		printer.Results(results)
		if !checks.AllPresent(results) {
			return ErrChecksFailed
		}
		return nil
	},
}

// filesCmd represents the verify files command
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Check required files only",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService()
		if err != nil {
			return err
		}
		printer := preflight.NewPrinter(os.Stdout)
		results := svc.CheckFiles()
		printer.Results(results)
		if !checks.AllPresent(results) {
			return ErrChecksFailed
		}
		return nil
	},
}

// databaseCmd represents the verify database command
var databaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check the advisory data file and database probe",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService()
		if err != nil {
			return err
		}
		printer := preflight.NewPrinter(os.Stdout)
		printer.DatabaseFile(svc.CheckDatabaseFile())
		report := &preflight.Report{DatabaseProbe: svc.ProbeDatabase()}
		printer.Probes(report)
		// Advisory only: never fails the command.
		return nil
	},
}

// storageCmd represents the verify storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Probe the document storage bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := buildService()
		if err != nil {
			return err
		}
		probe := svc.ProbeStorage(cmd.Context())
		if probe == nil {
			logg.Info("Storage probe disabled; set PROJECT_PROBE_STORAGE=true to enable it.")
			return nil
		}
		printer := preflight.NewPrinter(os.Stdout)
		printer.Probes(&preflight.Report{StorageProbe: probe})
		return nil
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
	verifyCmd.AddCommand(dirsCmd, filesCmd, databaseCmd, storageCmd)

	verifyCmd.PersistentFlags().StringVar(&baseDirFlag, "base-dir", "", "Override the configured base directory")
	verifyCmd.Flags().BoolVar(&jsonFlag, "json", false, "Additionally write the report as a JSON file")
	verifyCmd.Flags().BoolVar(&tableFlag, "table", false, "Additionally render the results as a table")
}

// buildService loads configuration and assembles the verification service
// with whichever advisory probes are enabled.
func buildService() (*preflight.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	baseDir := cfg.Project.ResolvedBaseDir()
	if baseDirFlag != "" {
		baseDir = utils.Absolute(utils.ExpandHome(baseDirFlag))
	}

	// Connect to Database (Optional)
	var db *gorm.DB
	if cfg.Project.ProbeDatabase {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
		}
	}

	// Create Storage Client (Optional)
	var store storage.Client
	if cfg.Project.ProbeStorage {
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client creation failed", zap.Error(err))
		} else {
			store = client
		}
	}

	svc := preflight.NewService(baseDir, cfg.Project.DatabaseFile, store, cfg.Storage.Bucket, db, cfg.Server.Environment, logg)
	return svc, logg, nil
}

func runFullVerification(ctx context.Context) error {
	svc, logg, err := buildService()
	if err != nil {
		return err
	}

	report := svc.Run(ctx)

	printer := preflight.NewPrinter(os.Stdout)
	printer.Report(report)

	if tableFlag {
		printer.Blank()
		printer.Table(report)
	}

	if jsonFlag {
		filename := preflight.ReportFilename(time.Now())
		if err := report.Save(filename); err != nil {
			return err
		}
		logg.Info("Report saved", zap.String("file", filename), zap.String("run_id", report.RunID))
	}

	if !report.Passed() {
		return ErrChecksFailed
	}
	return nil
}
