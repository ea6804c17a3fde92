// Command machina runs a model file against an input string and reports
// the resulting verdict.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corwin-ash/machina"
	"github.com/corwin-ash/machina/internal/obslog"
	"github.com/corwin-ash/machina/loader"
)

const (
	exitAccepted = 0
	exitRejected = 1
	exitDiverged = 2
	exitMalformed = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		maxDepth   int
		maxVisited int
		trace      bool
		configPath string
	)

	log, _ := obslog.New(false)

	cmd := &cobra.Command{
		Use:           "machina <model-file> <input-string>",
		Short:         "Run a model file against an input string",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 10000, "maximum BFS frontier depth")
	cmd.Flags().IntVar(&maxVisited, "max-visited", 1_000_000, "maximum configurations visited before diverging")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the shortest accepting/halting rule sequence")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML bounds sidecar")

	exitCode := exitAccepted
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		modelPath, inputArg := args[0], args[1]

		bounds := machina.Bounds{MaxDepth: maxDepth, MaxVisited: maxVisited}
		if configPath != "" {
			cfg, err := loader.LoadConfig(configPath)
			if err != nil {
				log.ParseFailure(configPath, err)
				exitCode = exitMalformed
				return err
			}
			if !cmd.Flags().Changed("max-depth") {
				bounds.MaxDepth = cfg.MaxDepth
			}
			if !cmd.Flags().Changed("max-visited") {
				bounds.MaxVisited = cfg.MaxVisited
			}
			if !cmd.Flags().Changed("trace") {
				trace = cfg.Trace
			}
		}

		model, err := loader.LoadFile(modelPath)
		if err != nil {
			log.ParseFailure(modelPath, err)
			exitCode = exitMalformed
			return err
		}

		input := loader.TokenizeInput(model.Descriptor, inputArg)
		if err := model.Descriptor.ValidateInput(input); err != nil {
			log.ParseFailure(modelPath, err)
			exitCode = exitMalformed
			return err
		}

		result := machina.Search(model.Descriptor, input, bounds,
			machina.WithContext(context.Background()),
			machina.WithTrace(trace),
		)
		log.RunSummary(modelPath, result.Verdict.String(), result.VisitedCount, result.MaxFrontierSize, result.Cancelled)

		fmt.Fprintln(cmd.OutOrStdout(), result.Verdict)
		if len(result.Output) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "tape:", symbolsToString(result.Output))
		}
		if len(result.RAMOutput) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "output:", wordsToString(result.RAMOutput))
		}
		if trace && len(result.Witness) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "witness:")
			for _, r := range result.Witness {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s -> %s\n", r.From, r.To)
			}
		}

		switch result.Verdict {
		case machina.Accepted, machina.Halted:
			exitCode = exitAccepted
		case machina.Rejected:
			exitCode = exitRejected
		default:
			exitCode = exitDiverged
		}
		return nil
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "machina:", err)
		if exitCode == exitAccepted {
			exitCode = exitMalformed
		}
	}
	return exitCode
}

func symbolsToString(syms []machina.Symbol) string {
	out := make([]byte, 0, len(syms))
	for _, s := range syms {
		out = append(out, []byte(string(s))...)
	}
	return string(out)
}

func wordsToString(words []machina.Word) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += " "
		}
		out += w.String()
	}
	return out
}
