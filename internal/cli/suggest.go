package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"pwd-advisor/internal/util"
	"pwd-advisor/pkg/strength"
	"pwd-advisor/pkg/suggest"
)

var (
	suggestCmd = &cobra.Command{
		Use:   "suggest",
		Short: "Generate hardened variants of a password",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return suggestCommand(args[0])
		},
	}
)

func init() {
	suggestCmd.Flags().IntVarP(&count, "count", "c", 3, "Number of suggestions to generate")

	rootCmd.AddCommand(suggestCmd)
}

func suggestCommand(password string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	s := suggest.New(nil)
	suggestions := s.Suggestions(password, count)
	if len(suggestions) == 0 {
		log.Warn().Msg("could not generate suggestions above the quality bar, try again")
		return nil
	}

	for _, candidate := range suggestions {
		log.Info().Msgf("%s (score %d/100)", candidate, strength.Score(candidate))
	}

	return nil
}
