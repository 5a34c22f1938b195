package ci

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// Task is one entry of `moon query tasks` output. Only the fields used for reporting are
// decoded.
type Task struct {
	Target  string `json:"target"`
	Command string `json:"command,omitempty"`
}

var affectedTasksQuery = []string{
	"query", "tasks",
	"--affected",
	"--upstream", "deep",
	"--downstream", "deep",
}

// QueryTasks asks moon for every task affected by the current changes, including their
// upstream and downstream dependents.
func QueryTasks(ctx context.Context, runner Runner) ([]Task, error) {
	out, err := runner.Run(ctx, "moon", affectedTasksQuery...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query affected tasks")
	}

	var result struct {
		Tasks []Task `json:"tasks"`
	}
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, errors.Wrap(err, "failed to parse moon query output")
	}

	return result.Tasks, nil
}
