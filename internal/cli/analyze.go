package cli

import (
	"errors"
	"github.com/manifoldco/promptui"
	"github.com/nbutton23/zxcvbn-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"pwd-advisor/internal/util"
	"pwd-advisor/pkg/attack"
	"pwd-advisor/pkg/cracktime"
	"pwd-advisor/pkg/strength"
)

var (
	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Score a password and estimate how long it would survive",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				// Dummy string
				return analyzeCommand("")
			} else {
				return analyzeCommand(args[0])
			}
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	analyzeCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. The password is prompted for and masked.")
	analyzeCmd.Flags().StringVar(&fullName, "name", "", "Full name to check the password against")
	analyzeCmd.Flags().StringVar(&email, "email", "", "Email address to check the password against")
	analyzeCmd.Flags().StringVar(&birthDate, "birth-date", "", "Date of birth (YYYY-MM-DD) to check the password against")

	rootCmd.AddCommand(analyzeCmd)
}

func analyzeCommand(password string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	if interactive {
		prompt := promptui.Prompt{
			Label: "Password",
			Mask:  '*',
			Validate: func(input string) error {
				if len(input) == 0 {
					return errors.New("please enter a valid password")
				}
				return nil
			},
		}

		log.Info().Msgf("Running interactive session. ^C to exit")
		if err := runAnalyzeSession(prompt); err != nil {
			if err.Error() == "^C" || err.Error() == "^D" {
				log.Info().Msgf("Goodbye")
			} else {
				log.Error().Err(err).Msgf("Error during interactive session")
			}
			// No return to avoid the default cobra error message
			return nil
		}

		return nil
	}

	reportPassword(password)
	return nil
}

func runAnalyzeSession(prompt promptui.Prompt) error {
	for {
		result, err := prompt.Run()
		if err != nil {
			return err
		}

		reportPassword(result)
	}
}

func reportPassword(password string) {
	score := strength.Score(password)
	log.Info().Msgf("Score: %d/100", score)

	issues := strength.CheckPersonalData(password, strength.Profile{
		FullName:    fullName,
		Email:       email,
		DateOfBirth: birthDate,
	})
	for _, issue := range issues {
		log.Warn().Msgf("%s", issue)
	}

	times := cracktime.Estimate(password, score)
	log.Info().Msgf("Crack time (regular computer): %s", times.Regular)
	log.Info().Msgf("Crack time (fast computer): %s", times.FastComputer)
	log.Info().Msgf("Crack time (supercomputer): %s", times.SuperComputer)

	for _, gpu := range cracktime.SimulateHashcat(password) {
		for _, algo := range gpu.Algorithms {
			log.Info().Msgf("%s cracking %s: %s", gpu.Name, algo.Algorithm, algo.Display)
		}
	}

	for _, mode := range attack.Simulate(password, score) {
		log.Info().Msgf("%s: effectiveness %s, estimated time %s", mode.Name, mode.Effectiveness, mode.EstimatedTime)
	}

	entropy := zxcvbn.PasswordStrength(password, nil)
	log.Info().Msgf("Entropy cross-check (zxcvbn): score %d/4, crack time %s", entropy.Score, entropy.CrackTimeDisplay)
}
