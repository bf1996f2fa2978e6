package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/BobbyBoy101/natureScape/internal/config"
	"github.com/BobbyBoy101/natureScape/internal/database"
	"github.com/BobbyBoy101/natureScape/internal/geo"
	"github.com/BobbyBoy101/natureScape/internal/seed"
	"github.com/BobbyBoy101/natureScape/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "naturescape",
		Short:         "natureScape photo database tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newSeedCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.LogError("%v", err)
		os.Exit(1)
	}
}

func newSeedCmd() *cobra.Command {
	var (
		drop bool
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with sample users, photos and locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(drop, dir)
		},
	}
	cmd.Flags().BoolVar(&drop, "drop", false, "drop and recreate the schema before seeding")
	cmd.Flags().StringVar(&dir, "dir", "", "image directory (defaults to seed.image_dir)")
	return cmd
}

func runSeed(drop bool, dir string) error {
	config.LoadEnv()
	config.Load()
	database.InitDB()

	if drop {
		if err := database.Reset(database.DB); err != nil {
			return err
		}
		logger.LogInfo("Schema dropped and recreated")
	}

	if dir == "" {
		dir = config.AppConfig.Seed.ImageDir
	}

	total, err := seed.CountCandidates(dir)
	if err != nil {
		return err
	}

	pterm.DefaultHeader.WithFullWidth().
		WithBackgroundStyle(pterm.NewStyle(pterm.BgLightGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("NATURESCAPE DATABASE SEEDER")
	pterm.Println()

	info := pterm.TableData{
		{"Database", color.New(color.FgCyan).Sprint(config.AppConfig.Database.Path)},
		{"Image Directory", color.New(color.FgCyan).Sprint(dir)},
		{"Candidate Files", color.New(color.FgYellow).Sprintf("%d", total)},
	}
	_ = pterm.DefaultTable.WithBoxed().WithData(info).Render()
	pterm.Println()

	resolver, err := geo.New()
	if err != nil {
		return err
	}

	seeder := seed.New(database.DB, resolver, config.AppConfig)

	logger.LogInfo("Seeding users...")
	users := seeder.SeedUsers()

	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Seeding images/locations...").
		WithShowCount(true).
		WithShowElapsedTime(true).
		Start()
	seeder.OnFile = func(seed.FileResult) { bar.Increment() }

	results, err := seeder.SeedImages(dir)
	bar.Stop()
	if err != nil {
		return err
	}

	reportResults(len(users), results)
	return nil
}

func reportResults(userCount int, results []seed.FileResult) {
	var seeded, skipped int
	var failures []seed.FileResult
	for _, r := range results {
		switch {
		case r.Err != nil:
			failures = append(failures, r)
		case r.Skipped:
			skipped++
		default:
			seeded++
		}
	}

	pterm.Println()
	if len(failures) == 0 {
		pterm.DefaultSection.WithStyle(pterm.NewStyle(pterm.FgGreen)).Println("SEEDING COMPLETED SUCCESSFULLY")
	} else {
		pterm.DefaultSection.WithStyle(pterm.NewStyle(pterm.FgYellow)).Println("COMPLETED WITH ERRORS")
	}
	pterm.Info.Printf("Users: %d | Photos: %d | Skipped: %d | Failed: %d\n",
		userCount, seeded, skipped, len(failures))

	if len(failures) > 0 {
		pterm.Println()
		pterm.Error.Println("Failure Report:")
		for _, f := range failures {
			fmt.Printf(" • %s: %v\n", color.RedString(f.File), f.Err)
		}
	}
	pterm.Println()
}
