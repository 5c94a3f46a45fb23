package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"pwd-advisor/internal/audit"
	"pwd-advisor/internal/util"
)

var (
	auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Score every password in a file and write a CSV report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return auditCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	auditCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Password list input file path, one password per line (required)")
	auditCmd.MarkFlagRequired("in-file")
	auditCmd.Flags().StringVarP(&outFile, "out-file", "o", "./audit.csv", "CSV report output path")
	auditCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite any existing files while writing the results.")
	auditCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of threads to use for scoring. If omitted or less than 2, defaults to twice the number of logical processors of the machine.")

	rootCmd.AddCommand(auditCmd)
}

func auditCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing password list file")
		}
	}(file)

	abs, err := filepath.Abs(outFile)
	if err != nil {
		log.Fatal().Err(err).Msgf("could not get absolute path of file")
	}

	if !overwrite {
		_, err = os.Stat(abs)
		if !os.IsNotExist(err) {
			log.Fatal().Msgf("file %s exists and overwrite flag is not set", outFile)
		}
	}

	out, err := os.Create(abs)
	if err != nil {
		return err
	}

	defer func(out *os.File) {
		if err = out.Close(); err != nil {
			log.Error().Err(err).Msg("error closing report file")
		}
	}(out)

	auditor := audit.New(file, threads)
	report, err := auditor.Process()
	if err != nil {
		return err
	}

	return report.WriteCSV(out)
}
