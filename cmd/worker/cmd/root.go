package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mconway/firefly-iii/cmd/setup"
	helperFlag "github.com/mconway/firefly-iii/internal/common/flag"
	"github.com/mconway/firefly-iii/internal/common/log"
	"github.com/mconway/firefly-iii/internal/deliveries/job"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to configuring and running a job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	j *job.Job
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdRuleGroup, "g", "", "rule group id")
	runJobCmd.Flags().StringP(runJobCmdUser, "u", "", "user id")
	runJobCmd.Flags().StringP(runJobCmdAccounts, "a", "", "comma separated account ids")
	runJobCmd.Flags().StringP(runJobCmdStartDate, "s", "", "window start date (YYYY-MM-DD)")
	runJobCmd.Flags().StringP(runJobCmdEndDate, "e", "", "window end date (YYYY-MM-DD)")
	runJobCmd.Flags().StringP(runJobCmdTriggeredBy, "t", "", "run trigger source")
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	for version, l := range j.Routes {
		for name := range l {
			list := fmt.Sprintf("version=%s, name=%s", version, name)
			fmt.Println(list)
		}
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name} -v={job-version} -g={rule-group-id} -u={user-id}",
		Run:     runJob,
	}
	runJobCmdName        = "name"
	runJobCmdVersion     = "version"
	runJobCmdRuleGroup   = "rule-group"
	runJobCmdUser        = "user"
	runJobCmdAccounts    = "accounts"
	runJobCmdStartDate   = "start-date"
	runJobCmdEndDate     = "end-date"
	runJobCmdTriggeredBy = "triggered-by"
)

func runJob(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	ruleGroupID, _ := ccmd.Flags().GetString(runJobCmdRuleGroup)
	userID, _ := ccmd.Flags().GetString(runJobCmdUser)
	accountIDs, _ := ccmd.Flags().GetString(runJobCmdAccounts)
	startDate, _ := ccmd.Flags().GetString(runJobCmdStartDate)
	endDate, _ := ccmd.Flags().GetString(runJobCmdEndDate)
	triggeredBy, _ := ccmd.Flags().GetString(runJobCmdTriggeredBy)

	s, _, err := setup.Init("job")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	defer func() {
		s.WriteDB.Close()
		s.ReadDB.Close()
		s.Cache.Close()
	}()

	j = job.New(s.Config, s.Service)
	j.Start(ctx, helperFlag.Job{
		JobName:     name,
		Version:     version,
		RuleGroupID: ruleGroupID,
		UserID:      userID,
		AccountIDs:  accountIDs,
		StartDate:   startDate,
		EndDate:     endDate,
		TriggeredBy: triggeredBy,
	})
	log.Info(ctx, "job server stopped!")
}
