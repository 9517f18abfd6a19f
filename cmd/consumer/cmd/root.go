package cmd

import (
	"context"
	"log"
	"os"

	"github.com/mconway/firefly-iii/cmd/setup"
	"github.com/mconway/firefly-iii/internal/common/graceful"
	xlog "github.com/mconway/firefly-iii/internal/common/log"
	"github.com/mconway/firefly-iii/internal/deliveries/consumer"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "consumer",
	Short: "Consumer is a consumer application for handling rule run messages",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runConsumerCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runConsumerCmdName)
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run consumer",
		Long:    `Run consumer for handling rule run messages, available consumer type: rule_run`,
		Example: "consumer run -n={consumer-type-name}",
		Run:     runConsumer,
	}
	runConsumerCmdName = "name"
)

func runConsumer(ccmd *cobra.Command, args []string) {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	consumerName, _ := ccmd.Flags().GetString(runConsumerCmdName)
	xlog.Infof(ctx, "initializing consumer: %s", consumerName)

	s, stopperContract, err := setup.Init("consumer-" + consumerName)
	if err != nil {
		log.Fatalf("failed to setup app: %v", err)
	}

	consumerProcess, consumerStopper, err := consumer.NewKafkaConsumer(ctx, consumerName, s.Config, s.Service, s)
	if err != nil {
		xlog.Fatalf(ctx, "failed to setup consumer: %v", err)
	}

	metricsProcess := consumer.NewHTTPServer(ctx, s.Config)

	starters = append(starters, consumerProcess.Start(), metricsProcess.Start())
	// graceful.StopProcess reverses the slice, so append in the opposite
	// order of the intended shutdown.
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, consumerStopper...)
	stoppers = append(stoppers, consumerProcess.Stop())
	stoppers = append(stoppers, metricsProcess.Stop())

	xlog.Infof(ctx, "consumer %s started, waiting for shutdown signal...", consumerName)

	graceful.StartProcessAtBackground(starters...)
	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)

	xlog.Infof(ctx, "consumer %s stopped successfully!", consumerName)
}
