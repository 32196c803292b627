package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/config"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/seed"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "dentaldesk",
	Short:   "DentalDesk back-office management tool",
	Long:    "Command line utilities for managing a DentalDesk installation.",
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var (
	configPathFlag string
	fixturePathFlag string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo data from a fixture file",
	Long: `Validates a JSON fixture against the seed schema and installs it.
Existing records are left untouched, so the command is safe to re-run.`,
	RunE: runSeed,
}

var (
	emailFlag    string
	passwordFlag string
)

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Reset an employee's password",
	RunE:  runResetPassword,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("DentalDesk CLI %s\n", rootCmd.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "config", "Configuration directory or file")

	seedCmd.Flags().StringVar(&fixturePathFlag, "fixture", "", "Path to the fixture JSON (defaults to seed.path from config)")

	resetPasswordCmd.Flags().StringVar(&emailFlag, "email", "", "Employee email (required)")
	resetPasswordCmd.Flags().StringVar(&passwordFlag, "password", "", "New password (required)")
	resetPasswordCmd.MarkFlagRequired("email")
	resetPasswordCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetPasswordCmd)
	rootCmd.AddCommand(versionCmd)
}

func connect() (*sqlx.DB, *repository.Repositories, error) {
	config.MustLoad(configPathFlag)
	cfg := config.Get()

	db, err := sqlx.Connect("mysql", cfg.Database.GetDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	repos := &repository.Repositories{
		Employees:  repository.NewSQLEmployeeRepository(db),
		PTO:        repository.NewSQLPTORepository(db),
		FrontDesk:  repository.NewSQLFrontDeskScheduleRepository(db),
		Doctors:    repository.NewSQLDoctorScheduleRepository(db),
		Tickets:    repository.NewSQLTicketRepository(db),
		LabCases:   repository.NewSQLLabCaseRepository(db),
		Directory:  repository.NewSQLDirectoryRepository(db),
		Documents:  repository.NewSQLDocumentRepository(db),
		Insurances: repository.NewSQLInsuranceRepository(db),
	}
	return db, repos, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, repos, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	path := fixturePathFlag
	if path == "" {
		path = config.Get().Seed.Path
	}
	if path == "" {
		return fmt.Errorf("no fixture path given, use --fixture or set seed.path")
	}

	fixture, err := seed.Load(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := seed.NewSeeder(db, repos).Run(ctx, fixture); err != nil {
		return err
	}

	fmt.Printf("Seeded fixture %s for company %s\n", path, fixture.CompanyID)
	return nil
}

func runResetPassword(cmd *cobra.Command, args []string) error {
	db, repos, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	emp, err := repos.Employees.GetByEmail(ctx, emailFlag)
	if err != nil {
		return fmt.Errorf("look up %s: %w", emailFlag, err)
	}

	employees := service.NewEmployeeService(repos.Employees)
	if err := employees.ResetPassword(ctx, emp.ID, passwordFlag); err != nil {
		return err
	}

	fmt.Printf("Password updated for %s\n", emailFlag)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
