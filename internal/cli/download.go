package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
	"pwd-advisor/internal/util"
	"pwd-advisor/pkg/wordlist"
	"strings"
)

var (
	downloadCmd = &cobra.Command{
		Use:   "download",
		Short: "Download a common password wordlist to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return downloadCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	downloadCmd.Flags().StringVarP(&listName, "list", "l", "top-10000", "Wordlist to download. One of: "+strings.Join(wordlist.ListNames(), ", "))
	downloadCmd.Flags().StringVarP(&outFile, "out-file", "o", "./wordlist.txt", "Output file path. Can be absolute or relative.")
	downloadCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite any existing files while writing the results.")

	rootCmd.AddCommand(downloadCmd)
}

func downloadCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	abs, err := filepath.Abs(outFile)
	if err != nil {
		log.Fatal().Err(err).Msgf("could not get absolute path of file")
	}

	if !overwrite {
		_, err := os.Stat(abs)
		if err == nil {
			log.Fatal().Msgf("file %s exists and overwrite flag is not set", abs)
		}
	}

	util.CheckDiskSpace(abs, 16)

	file, err := os.Create(abs)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing wordlist file")
		}
	}(file)

	d := wordlist.NewDownloader(file)
	if err = d.Fetch(listName); err != nil {
		return err
	}

	return nil
}
