package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/sainu/http-link-header/linkheader"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("no matching link")

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find [HEADER...]",
	Short: "Print the first link matching an attribute.",
	Long: `Print the first link matching an attribute.

With the text format only the URI is printed. --attr uri matches the URI itself.
Exits with 1 when no link matches.`,
	Run: func(cmd *cobra.Command, args []string) {
		hdr, err := headerValue(args, cmd.InOrStdin())
		if err != nil {
			log.WithError(err).Fatal("Error reading input.")
		}

		logger := log.WithField("attr", findAttr).WithField("value", findValue)
		if err := find(cmd.OutOrStdout(), hdr, findAttr, findValue, opts); err != nil {
			if errors.Is(err, errNoMatch) {
				logger.Info("No matching link.")
			} else {
				logger.WithError(err).Error("Error searching header.")
			}
			exit(1)
		}
	},
}

var (
	findAttr  string
	findValue string
)

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringVar(&findAttr, "attr", linkheader.FieldRel, "attribute to match")
	findCmd.Flags().StringVar(&findValue, "value", "", "value the attribute must equal")
	_ = findCmd.MarkFlagRequired("value")
}

func find(w io.Writer, hdr string, attr string, value string, o options) error {
	c, err := linkheader.Parse(hdr, o.parseOptions()...)
	if err != nil {
		return err
	}
	l, ok := c.FindBy(attr, value)
	if !ok {
		return fmt.Errorf("%w: %s=%q", errNoMatch, attr, value)
	}
	return writeValue(w, o.Format, newLinkOutput(l), l.URI())
}
