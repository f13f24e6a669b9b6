// Command ptil is a thin Cobra CLI over the encoder facade, for manual and
// offline inspection of PTIL output (SPEC_FULL.md §10). It carries no
// algorithmic content of its own: every command delegates straight into
// pkg/encoder, the same facade-in-front-of-a-CLI shape as the teacher's
// cmd/root/root.go, trimmed down to PTIL's two operations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ptil-org/ptil/pkg/csc"
	"github.com/ptil-org/ptil/pkg/encoder"
	"github.com/ptil-org/ptil/pkg/logging"
	"github.com/ptil-org/ptil/pkg/serializer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "ptil",
		Short: "ptil - Compressed Semantic Code encoder",
		Long:  "ptil runs the PTIL encoder pipeline over natural-language text and prints its symbolic serialization.",
		Example: `  ptil encode "The boy will not go to school tomorrow."
  ptil encode --format compact "She gave him a book."`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&lang, "lang", "l", "en", "language code (en, es, fr, de, it)")

	cmd.AddCommand(newEncodeCmd(&lang))
	cmd.AddCommand(newTrainingCmd(&lang))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newEncodeCmd(lang *string) *cobra.Command {
	var format string
	var logFile string

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text into a serialized CSC string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []func(*encoder.Encoder)

			if logFile != "" {
				diagLogger, rf, err := logging.NewDiagnosticLogger(logFile)
				if err != nil {
					return err
				}
				defer rf.Close()
				opts = append(opts, encoder.WithDiagnosticLogger(diagLogger))
			}

			e, err := encoder.New(*lang, opts...)
			if err != nil {
				return err
			}

			out, err := e.EncodeAndSerialize(args[0], serializer.Format(format))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(serializer.FormatVerbose), "output format: verbose, compact, or ultra")
	cmd.Flags().StringVar(&logFile, "log-file", "", "optional path to record InternalDegradation diagnostics (size-rotated)")

	return cmd
}

func newTrainingCmd(lang *string) *cobra.Command {
	var formatType string
	var separator string
	var includeBrackets bool
	var cscWeight, originalWeight float64

	cmd := &cobra.Command{
		Use:   "training [text]",
		Short: "Render text into a training-corpus layout (standard, csc_only, or mixed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := encoder.New(*lang)
			if err != nil {
				return err
			}

			cfg := encoder.DefaultTrainingConfig()
			cfg.FormatType = encoder.FormatType(formatType)
			cfg.Separator = separator
			cfg.IncludeBrackets = includeBrackets
			cfg.CSCWeight = cscWeight
			cfg.OriginalWeight = originalWeight

			out, err := e.EncodeForTraining(args[0], cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&formatType, "format-type", string(encoder.FormatStandard), "standard, csc_only, or mixed")
	cmd.Flags().StringVar(&separator, "separator", " ", "segment separator")
	cmd.Flags().BoolVar(&includeBrackets, "include-brackets", true, "include [CSC]/[TEXT] markers")
	cmd.Flags().Float64Var(&cscWeight, "csc-weight", 1.0, "repeat weight for the CSC segment (mixed only)")
	cmd.Flags().Float64Var(&originalWeight, "original-weight", 1.0, "repeat weight for the original-text segment (mixed only)")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ROOT set version this build encodes against",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ptil root-set version %d\n", csc.RootSetVersion)
		},
	}
}
