package commands

import (
	"context"

	"gopkg.in/urfave/cli.v1"

	"github.com/moonrepo/plugins/src/pkg/ci"
	"github.com/moonrepo/plugins/src/pkg/infrastructure/print"
)

var ciJobsFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "per-job",
		Usage: "tasks handled by one job - by default, the configured tasks_per_job",
	},
	cli.StringFlag{
		Name:  "github-output",
		Usage: "file to append job outputs to - by default, $GITHUB_OUTPUT",
	},
}

func ciJobs(c *cli.Context) error {
	env, err := getCommandEnv(c)
	if err != nil {
		return err
	}

	perJob := env.Config.TasksPerJob
	if c.IsSet("per-job") {
		perJob = c.Int("per-job")
	}
	output := env.Config.GitHubOutput
	if c.IsSet("github-output") {
		output = c.String("github-output")
	}

	plan, err := planCIJobs(context.Background(), ci.ExecRunner{Dir: env.Root}, perJob)
	if err != nil {
		return err
	}

	return ci.WriteGitHubOutput(output, plan)
}

func planCIJobs(ctx context.Context, runner ci.Runner, perJob int) (ci.Plan, error) {
	tasks, err := ci.QueryTasks(ctx, runner)
	if err != nil {
		return ci.Plan{}, err
	}

	print.Info("Tasks:")
	for _, task := range tasks {
		print.Info(" ", task.Target)
	}

	plan := ci.PlanJobs(len(tasks), perJob)

	print.Info("Task count:", len(tasks))
	print.Info("Job total:", plan.Total)
	print.Info("Jobs:", plan.Jobs)

	return plan, nil
}
