package cmd

import (
	"os"

	"github.com/sainu/http-link-header/linkheader"
	"github.com/sainu/http-link-header/utils/envtag"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	envTag    = "env"
	envPrefix = "LINK_HEADER_"

	flagQuoteAware = "quote-aware"
	flagFormat     = "format"
	flagLogLevel   = "log-level"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "http-link-header",
	Short: "Parse and generate HTTP Link headers.",
	Long: `Parse and generate HTTP Link headers.

Header values are read from the arguments or, when there are none, from stdin.
Several arguments or input lines are treated as separate Link header fields.

Every persistent flag can also be set through the environment, e.g. ` + envPrefix + `FORMAT=json.`,
}

type options struct {
	QuoteAware bool   `env:"QUOTE_AWARE"`
	Format     string `env:"FORMAT"`
	LogLevel   string `env:"LOG_LEVEL"`
}

func (o options) parseOptions() []linkheader.ParseOption {
	if o.QuoteAware {
		return []linkheader.ParseOption{linkheader.WithQuoteAwareSplit()}
	}
	return nil
}

var (
	// The effective options.
	opts = options{Format: formatText, LogLevel: log.InfoLevel.String()}
	// Values given on the command line.
	flagOpts options
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&flagOpts.QuoteAware, flagQuoteAware, false, "don't split on commas and semicolons inside quotes or <>")
	flags.StringVarP(&flagOpts.Format, flagFormat, "o", formatText, "output format (text, yaml or json)")
	flags.StringVar(&flagOpts.LogLevel, flagLogLevel, log.InfoLevel.String(), "log level")
	cobra.OnInitialize(initOptions)
}

func initOptions() {
	log.SetOutput(os.Stderr)

	if err := envtag.Unmarshal(envTag, envPrefix, &opts); err != nil {
		log.WithError(err).Fatal("Error reading options from the environment.")
	}

	// Flags given explicitly win over the environment.
	flags := rootCmd.PersistentFlags()
	if flags.Changed(flagQuoteAware) {
		opts.QuoteAware = flagOpts.QuoteAware
	}
	if flags.Changed(flagFormat) {
		opts.Format = flagOpts.Format
	}
	if flags.Changed(flagLogLevel) {
		opts.LogLevel = flagOpts.LogLevel
	}

	lvl, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("Invalid log level.")
	}
	log.SetLevel(lvl)

	if err := checkFormat(opts.Format); err != nil {
		log.WithError(err).Fatal("Invalid output format.")
	}
	log.WithField("options", opts).Debug("Loaded options.")
}
