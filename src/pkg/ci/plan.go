package ci

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/moonrepo/plugins/src/pkg/infrastructure/fs"
)

// DefaultTasksPerJob is how many tasks one CI job runs.
const DefaultTasksPerJob = 10

// Plan describes how many CI jobs to spawn and their indices.
type Plan struct {
	Total int   `json:"total"`
	Jobs  []int `json:"jobs"`
}

// PlanJobs shards taskCount tasks into jobs of at most perJob tasks. No tasks means no jobs.
func PlanJobs(taskCount, perJob int) Plan {
	if perJob <= 0 {
		perJob = DefaultTasksPerJob
	}

	total := 0
	if taskCount > 0 {
		// rounded up once; 20 tasks at 10 per job is 2 jobs, not 3
		total = (taskCount + perJob - 1) / perJob
	}

	jobs := make([]int, total)
	for i := range jobs {
		jobs[i] = i
	}

	return Plan{Total: total, Jobs: jobs}
}

// GitHubOutput renders the plan as GitHub Actions step outputs.
func (p Plan) GitHubOutput() (string, error) {
	jobs, err := json.Marshal(p.Jobs)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode jobs")
	}
	return fmt.Sprintf("job-total=%d\njobs-array=%s\n", p.Total, jobs), nil
}

// WriteGitHubOutput appends the plan to the GITHUB_OUTPUT file at path. An empty path
// means the command is not running inside GitHub Actions and nothing is written.
func WriteGitHubOutput(path string, p Plan) error {
	if path == "" {
		return nil
	}

	out, err := p.GitHubOutput()
	if err != nil {
		return err
	}

	if err := fs.AppendFile(path, []byte(out), fs.PermFileShared); err != nil {
		return errors.Wrapf(err, "failed to write GitHub output to %s", path)
	}
	return nil
}
