package cmd

import (
	"fmt"
	"os"

	"codepdf/pkg/logging"
	"codepdf/pkg/submit"
	"codepdf/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	args   submit.Arguments
	debug  bool
	logger *zap.Logger
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "codepdf",
	Short: "codepdf renders a project's source files into one PDF",
	Long: `codepdf collects the code files of a project, prints each one under a
"FILE: <path>" title and writes them all into a single landscape PDF,
preceded by an optional header text. Long lines are never wrapped: the font
is shrunk per file until the longest line fits.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logger
		if debug {
			l, err := logging.Setup(logging.Options{Debug: true, Name: "codepdf", Version: version.Version})
			if err != nil {
				return fmt.Errorf("failed to set up debug logging: %w", err)
			}
			log = l
		}
		if args.IgnoreFile == "" {
			args.IgnoreFile = os.Getenv("CODEPDF_IGNORE")
		}

		summary, err := submit.Run(args, log)
		if err != nil {
			return err
		}
		summary.Print(cmd.OutOrStdout())
		return nil
	},
}

// Execute runs the root command with the given logger.
func Execute(l *zap.Logger) error {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	return RootCmd.Execute()
}

func init() {
	flags := RootCmd.Flags()
	flags.StringVarP(&args.Output, "output", "o", "", "Output PDF filename")
	flags.StringVar(&args.Header, "header", "", "Path to header text file (optional, relative to --root)")
	flags.StringVar(&args.Root, "root", ".", "Project root")
	flags.StringVar(&args.IgnoreFile, "ignore-file", "", "Global ignore file (default $CODEPDF_IGNORE)")
	flags.StringSliceVar(&args.ExtraExtensions, "ext", nil, "Additional file extensions to include, e.g. .go")
	flags.StringSliceVar(&args.ExtraExcludeDirs, "exclude-dir", nil, "Additional directory names to exclude")
	flags.BoolVar(&args.Tree, "tree", false, "List the included files in the header section")
	flags.BoolVarP(&args.Verbose, "verbose", "v", false, "Log every selection decision")
	flags.BoolVar(&debug, "debug", false, "Enable development logging")
	_ = RootCmd.MarkFlagRequired("output")
}
