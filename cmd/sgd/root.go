package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	sgd "github.com/yeastlab/go-sgd"
	"github.com/yeastlab/go-sgd/internal/store"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sgd",
		Short:   "Query the Saccharomyces Genome Database REST backend",
		Long:    "sgd fetches locus, gene, phenotype, and GO term records from the SGD REST backend and prints the raw JSON to stdout.",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Example: `  sgd gene ARO1                      # basic locus information by gene name
  sgd locus S000002534 sequence_details
  sgd go GO:0000001 locus_details
  sgd phenotype increased_chemical_compound_accumulation locus_details
  sgd endpoints locus                # list available sub-resources`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.Duration("timeout", 60*time.Second, "HTTP request timeout")
	flags.Bool("insecure", false, "Skip TLS certificate verification")
	flags.String("proxy", "", "Proxy URL for outbound requests")
	flags.StringArray("header", nil, "Extra request header as 'Name: value' (repeatable)")
	flags.String("base-url", "", "Override the backend base URL")
	flags.String("cache-db", "", "DuckDB file for a persistent response cache")
	flags.Bool("no-cache", false, "Bypass the in-process response cache")
	flags.BoolP("verbose", "v", false, "Log requests and cache activity to stderr")

	cmd.AddCommand(newLocusCmd())
	cmd.AddCommand(newGeneCmd())
	cmd.AddCommand(newPhenotypeCmd())
	cmd.AddCommand(newGOCmd())
	cmd.AddCommand(newEndpointsCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig wires flags and ~/.sgd.yaml into viper. Flags win over the
// config file.
func initConfig(cmd *cobra.Command) error {
	for _, key := range []string{"timeout", "insecure", "proxy", "base-url", "cache-db", "no-cache", "verbose"} {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return err
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".sgd")
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}
	return nil
}

// buildOptions assembles sgd.Options from flags and config. The
// returned cleanup closes the persistent store, if one was opened.
func buildOptions(cmd *cobra.Command) (*sgd.Options, func(), error) {
	opts := &sgd.Options{
		Timeout:  viper.GetDuration("timeout"),
		Insecure: viper.GetBool("insecure"),
		Proxy:    viper.GetString("proxy"),
		BaseURL:  viper.GetString("base-url"),
		NoCache:  viper.GetBool("no-cache"),
	}

	headers, err := cmd.Flags().GetStringArray("header")
	if err != nil {
		return nil, nil, err
	}
	if len(headers) > 0 {
		opts.Header = make(http.Header, len(headers))
		for _, h := range headers {
			name, value, ok := strings.Cut(h, ":")
			if !ok {
				return nil, nil, fmt.Errorf("malformed header %q, want 'Name: value'", h)
			}
			opts.Header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
		}
	}

	if viper.GetBool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, err
		}
		opts.Logger = logger
	}

	cleanup := func() {}
	if path := viper.GetString("cache-db"); path != "" {
		st, err := store.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening response cache: %w", err)
		}
		opts.Store = st
		cleanup = func() { st.Close() }
	}

	return opts, cleanup, nil
}
