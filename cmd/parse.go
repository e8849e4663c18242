package cmd

import (
	"io"

	"github.com/sainu/http-link-header/linkheader"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [HEADER...]",
	Short: "Parse a Link header and print its links.",
	Run: func(cmd *cobra.Command, args []string) {
		hdr, err := headerValue(args, cmd.InOrStdin())
		if err != nil {
			log.WithError(err).Fatal("Error reading input.")
		}
		if err := parseLinks(cmd.OutOrStdout(), hdr, opts); err != nil {
			log.WithError(err).Error("Error parsing header.")
			exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseLinks(w io.Writer, hdr string, o options) error {
	c, err := linkheader.Parse(hdr, o.parseOptions()...)
	if err != nil {
		return err
	}
	log.WithField("links", c.Len()).Debug("Parsed header.")
	return writeLinks(w, o.Format, c.Links())
}
