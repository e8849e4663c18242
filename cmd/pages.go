package cmd

import (
	"fmt"
	"io"

	"github.com/sainu/http-link-header/utils/pagination"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// pagesCmd represents the pages command
var pagesCmd = &cobra.Command{
	Use:   "pages [HEADER...]",
	Short: "Print the first, prev, next and last page numbers of a paginated response.",
	Run: func(cmd *cobra.Command, args []string) {
		hdr, err := headerValue(args, cmd.InOrStdin())
		if err != nil {
			log.WithError(err).Fatal("Error reading input.")
		}
		if err := pages(cmd.OutOrStdout(), hdr, pageParam, opts); err != nil {
			log.WithError(err).Error("Error writing pages.")
			exit(1)
		}
	},
}

var pageParam string

func init() {
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.Flags().StringVar(&pageParam, "param", pagination.DefaultParam, "query parameter holding the page number")
}

func pages(w io.Writer, hdr string, param string, o options) error {
	p := pagination.Parse(hdr, param)
	text := fmt.Sprintf("first=%d prev=%d next=%d last=%d", p.First, p.Prev, p.Next, p.Last)
	return writeValue(w, o.Format, p, text)
}
