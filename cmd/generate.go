package cmd

import (
	"fmt"
	"io"

	"github.com/sainu/http-link-header/linkfile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a Link header from a YAML link file.",
	Long: `Generate a Link header from a YAML link file.

The file lists the links to render:

  links:
    - uri: /?page=1
      rel: previous
    - uri: /?page=3
      rel: next
      title: next page

Use "-" to read the file from stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := withInput(linksFile, cmd.InOrStdin(), func(r io.Reader) error {
			return generate(cmd.OutOrStdout(), r)
		})
		if err != nil {
			log.WithField("file", linksFile).WithError(err).Error("Error generating header.")
			exit(1)
		}
	},
}

var linksFile string

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&linksFile, "file", "f", "links.yml", "link file")
}

func generate(w io.Writer, r io.Reader) error {
	f, err := linkfile.Read(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, f.Collection().String())
	return err
}
