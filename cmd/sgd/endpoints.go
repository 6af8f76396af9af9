package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	sgd "github.com/yeastlab/go-sgd"
)

// resourceEndpoints maps each resource kind to its accessor
// descriptions. Gene shares the locus set: a gene is a locus once its
// name has been resolved.
var resourceEndpoints = map[string]map[string]string{
	"locus":     sgd.LocusEndpoints,
	"gene":      sgd.LocusEndpoints,
	"phenotype": sgd.PhenotypeEndpoints,
	"go":        sgd.GOEndpoints,
}

func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints [kind]",
		Short: "List the sub-resources available per resource kind",
		Example: `  sgd endpoints          # all resource kinds
  sgd endpoints locus    # locus sub-resources only`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				endpoints, ok := resourceEndpoints[args[0]]
				if !ok {
					return fmt.Errorf("unknown resource kind %q, expected locus, gene, phenotype, or go", args[0])
				}
				printEndpoints(cmd, args[0], endpoints)
				return nil
			}
			for _, kind := range []string{"locus", "gene", "phenotype", "go"} {
				printEndpoints(cmd, kind, resourceEndpoints[kind])
			}
			return nil
		},
	}
}

func printEndpoints(cmd *cobra.Command, kind string, endpoints map[string]string) {
	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd.Printf("%s:\n", kind)
	for _, name := range names {
		cmd.Printf("  %-27s %s\n", name, endpoints[name])
	}
	cmd.Println()
}
