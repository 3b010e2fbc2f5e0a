package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/afd-sim/afd-sim/sim"
	"github.com/afd-sim/afd-sim/sim/scenario"
)

var (
	// CLI flags shared by every workflow
	batchSize       int     // Batch size for the estimation run
	seqLen          int     // Sequence length for the estimation run
	microBatch      int     // Optional micro-batch override (reserved)
	tokensPerExpert float64 // Optional tokens-per-expert override (reserved)
	outputPath      string  // Optional path to dump the raw result as JSON
	logLevel        string  // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "afdsim",
	Short: "Analytic performance estimator for transformer layers",
}

// workflow binds a subcommand pair to a table renderer, so adding a
// workflow is one registry entry rather than a new run function.
type workflow struct {
	use         string
	short       string
	command     string
	commandHelp string
	render      tableRenderer
}

var workflows = []workflow{
	{
		use:         "afd",
		short:       "Attention-FFN disaggregation workflows",
		command:     "simulate",
		commandHelp: "Run analytic AFD simulation",
		render:      renderAFDTable,
	},
	{
		use:         "large-ep",
		short:       "Large expert-parallel workflows",
		command:     "evaluate",
		commandHelp: "Run expert-parallel analytic simulation",
		render:      renderLargeEPTable,
	},
}

func runWorkflow(render tableRenderer) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		scn, err := scenario.Load(args[0])
		if err != nil {
			logrus.Fatalf("Failed to load scenario: %v", err)
		}

		runtime := sim.RuntimeSpec{
			BatchSize:       batchSize,
			SeqLen:          seqLen,
			MicroBatch:      microBatch,
			TokensPerExpert: tokensPerExpert,
		}
		logrus.Infof("Estimating scenario %q on %s with batch=%d seq=%d",
			scn.Name, scn.Hardware.Name, batchSize, seqLen)

		estimator := sim.NewAnalyticEstimator(scn.Hardware, runtime)
		result, err := scenario.Run(scn, runtime, estimator)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		printRun(scn, result, render)

		if result.PeakMemoryBytes > scn.Hardware.HBMBytes() && scn.Hardware.HBMBytes() > 0 {
			logrus.Warnf("peak layer traffic %.2f GB exceeds %s HBM capacity %.0f GB",
				result.PeakMemoryBytes/1e9, scn.Hardware.Name, scn.Hardware.HBMGB)
		}

		if outputPath != "" {
			if err := dumpResult(outputPath, result); err != nil {
				logrus.Fatalf("Failed to write result: %v", err)
			}
			logrus.Infof("Saved raw result to %s", outputPath)
		}
	}
}

func init() {
	for _, wf := range workflows {
		workflowCmd := &cobra.Command{Use: wf.use, Short: wf.short}
		runCmd := &cobra.Command{
			Use:   wf.command + " <scenario.yaml>",
			Short: wf.commandHelp,
			Args:  cobra.ExactArgs(1),
			Run:   runWorkflow(wf.render),
		}
		runCmd.Flags().IntVar(&batchSize, "batch", 0, "Batch size (required)")
		runCmd.Flags().IntVar(&seqLen, "seq", 0, "Sequence length (required)")
		runCmd.Flags().IntVar(&microBatch, "micro-batch", 0, "Micro-batch size override")
		runCmd.Flags().Float64Var(&tokensPerExpert, "tokens-per-expert", 0, "Tokens-per-expert override")
		runCmd.Flags().StringVar(&outputPath, "output", "", "Path to dump raw result JSON")
		runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
		runCmd.MarkFlagRequired("batch")
		runCmd.MarkFlagRequired("seq")
		workflowCmd.AddCommand(runCmd)
		rootCmd.AddCommand(workflowCmd)
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
