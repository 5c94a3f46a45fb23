package cli

import (
	"context"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os/signal"
	"pwd-advisor/internal/util"
	"pwd-advisor/pkg/attack"
	"pwd-advisor/pkg/strength"
	"syscall"
)

var (
	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Run a live attack simulation against a password",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulateCommand(args[0])
		},
	}
)

func init() {
	simulateCmd.Flags().StringVar(&fullName, "name", "", "Full name to check the password against")
	simulateCmd.Flags().StringVar(&email, "email", "", "Email address to check the password against")
	simulateCmd.Flags().StringVar(&birthDate, "birth-date", "", "Date of birth (YYYY-MM-DD) to check the password against")

	rootCmd.AddCommand(simulateCmd)
}

func simulateCommand(password string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prof := strength.Profile{
		FullName:    fullName,
		Email:       email,
		DateOfBirth: birthDate,
	}

	score := strength.Score(password)
	log.Info().Msgf("starting simulation, score %d/100. ^C to stop", score)

	sim := attack.NewSimulation(password, prof, score)
	var last attack.Snapshot
	for snap := range sim.Start(ctx) {
		last = snap
		for _, p := range snap.Attacks {
			if p.Status == attack.StatusRunning {
				log.Info().Msgf("[%s] %s: %.0f%% (%d attempts)", snap.Elapsed.Round(0), p.Name, p.Percent, p.Attempts)
			}
		}
	}

	if !last.Done {
		log.Info().Msg("simulation cancelled")
		return nil
	}

	if last.Cracked {
		for _, p := range last.Attacks {
			if p.Status == attack.StatusCracked {
				log.Warn().Msgf("password cracked by %s after %s: %s", p.Name, last.Elapsed.Round(0), p.Method)
			}
		}
	} else {
		log.Info().Msgf("password survived all attacks for %s", last.Elapsed.Round(0))
	}

	return nil
}
