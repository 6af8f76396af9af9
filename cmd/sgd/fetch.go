package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	sgd "github.com/yeastlab/go-sgd"
)

func newLocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locus <id> [sub-resource]",
		Short: "Fetch a locus record by SGD identifier",
		Example: `  sgd locus S000002534
  sgd locus S000002534 go_details`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cleanup, err := buildOptions(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			l := sgd.NewLocus(args[0], opts)
			resp, err := fetchLocus(l, subResourceArg(args))
			if err != nil {
				return err
			}
			return writeResponse(cmd, resp)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	return cmd
}

func newGeneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gene <name> [sub-resource]",
		Short: "Fetch a locus record by gene name",
		Example: `  sgd gene ARO1
  sgd gene aro1 phenotype_details`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cleanup, err := buildOptions(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := sgd.NewGene(args[0], opts)
			if err != nil {
				return err
			}
			resp, err := fetchLocus(&g.Locus, subResourceArg(args))
			if err != nil {
				return err
			}
			return writeResponse(cmd, resp)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	return cmd
}

func newPhenotypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phenotype <name> [sub-resource]",
		Short: "Fetch a phenotype record",
		Example: `  sgd phenotype increased_chemical_compound_accumulation
  sgd phenotype increased_chemical_compound_accumulation locus_details`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cleanup, err := buildOptions(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			p := sgd.NewPhenotype(args[0], opts)
			var resp *sgd.Response
			switch sub := subResourceArg(args); sub {
			case "details":
				resp, err = p.Details()
			case "locus_details":
				resp, err = p.LocusDetails()
			default:
				return unknownSubResource(sub, sgd.PhenotypeEndpoints)
			}
			if err != nil {
				return err
			}
			return writeResponse(cmd, resp)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	return cmd
}

func newGOCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "go <id> [sub-resource]",
		Short: "Fetch a gene ontology term record",
		Example: `  sgd go GO:0000001
  sgd go 1 locus_details`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cleanup, err := buildOptions(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			g := sgd.NewGOTerm(args[0], opts)
			var resp *sgd.Response
			switch sub := subResourceArg(args); sub {
			case "details":
				resp, err = g.Details()
			case "locus_details":
				resp, err = g.LocusDetails()
			default:
				return unknownSubResource(sub, sgd.GOEndpoints)
			}
			if err != nil {
				return err
			}
			return writeResponse(cmd, resp)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	return cmd
}

// subResourceArg returns the requested sub-resource name, defaulting to
// the base details view.
func subResourceArg(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return "details"
}

// fetchLocus dispatches a sub-resource name to the matching locus
// accessor. Gene commands route through here too, since a gene is a
// locus after name resolution.
func fetchLocus(l *sgd.Locus, sub string) (*sgd.Response, error) {
	switch sub {
	case "details":
		return l.Details()
	case "go_details":
		return l.GODetails()
	case "interaction_details":
		return l.InteractionDetails()
	case "literature_details":
		return l.LiteratureDetails()
	case "neighbor_sequence_details":
		return l.NeighborSequenceDetails()
	case "phenotype_details":
		return l.PhenotypeDetails()
	case "posttranslational_details":
		return l.PosttranslationalDetails()
	case "protein_domain_details":
		return l.ProteinDomainDetails()
	case "protein_experiment_details":
		return l.ProteinExperimentDetails()
	case "regulation_details":
		return l.RegulationDetails()
	case "sequence_details":
		return l.SequenceDetails()
	default:
		return nil, unknownSubResource(sub, sgd.LocusEndpoints)
	}
}

func unknownSubResource(sub string, endpoints map[string]string) error {
	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Errorf("unknown sub-resource %q, expected one of: %s", sub, strings.Join(names, ", "))
}

// writeResponse prints the raw response body to stdout or the file
// given with --output.
func writeResponse(cmd *cobra.Command, resp *sgd.Response) error {
	outputFile, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if outputFile == "" {
		_, err = os.Stdout.Write(resp.Body)
		return err
	}
	if err := os.WriteFile(outputFile, resp.Body, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
