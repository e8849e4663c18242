package cmd

import (
	"fmt"
	"io"

	"github.com/sainu/http-link-header/feedlinks"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// feedCmd represents the feed command
var feedCmd = &cobra.Command{
	Use:   "feed FILE",
	Short: "Generate a Link header from the links of an Atom, RSS or JSON feed.",
	Long: `Generate a Link header from the links of an Atom, RSS or JSON feed.

Use "-" to read the feed from stdin.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := withInput(args[0], cmd.InOrStdin(), func(r io.Reader) error {
			return feedHeader(cmd.OutOrStdout(), r)
		})
		if err != nil {
			log.WithField("feed", args[0]).WithError(err).Error("Error reading feed links.")
			exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(feedCmd)
}

func feedHeader(w io.Writer, r io.Reader) error {
	c, err := feedlinks.FromReader(r)
	if err != nil {
		return err
	}
	if !c.IsPresent() {
		log.Warn("Feed has no links.")
	}
	_, err = fmt.Fprintln(w, c.String())
	return err
}
