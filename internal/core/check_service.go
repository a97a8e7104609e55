package core

import (
	"fmt"

	"github.com/EmundoT/dep-comply/internal/types"
)

// CheckService compares a committed report against the current dependency
// graph. It exists so CI can require the committed compliance file to stay
// current: any coordinate added to or removed from the graph shows up as a
// diff and fails the check.
type CheckService struct{}

// NewCheckService creates a new CheckService
func NewCheckService() *CheckService {
	return &CheckService{}
}

// CheckResult lists the coordinates that differ between the current snapshot
// and the committed report, per list. "Added" means present in the graph but
// missing from the report; "Removed" means the report still lists it but the
// graph no longer does.
type CheckResult struct {
	AddedDependencies        []types.DependencyIdentifier
	RemovedDependencies      []types.DependencyIdentifier
	AddedBuildDependencies   []types.DependencyIdentifier
	RemovedBuildDependencies []types.DependencyIdentifier
	AddedRepositories        []types.RepositoryIdentifier
	RemovedRepositories      []types.RepositoryIdentifier
	AddedBuildRepositories   []types.RepositoryIdentifier
	RemovedBuildRepositories []types.RepositoryIdentifier
}

// InSync reports whether the committed report matches the current graph.
func (r CheckResult) InSync() bool {
	return len(r.AddedDependencies) == 0 && len(r.RemovedDependencies) == 0 &&
		len(r.AddedBuildDependencies) == 0 && len(r.RemovedBuildDependencies) == 0 &&
		len(r.AddedRepositories) == 0 && len(r.RemovedRepositories) == 0 &&
		len(r.AddedBuildRepositories) == 0 && len(r.RemovedBuildRepositories) == 0
}

// Compare diffs the current snapshot against the committed one.
func (s *CheckService) Compare(current, committed types.DependencyExport) CheckResult {
	var result CheckResult
	result.AddedDependencies, result.RemovedDependencies = diffDependencies(current.Dependencies, committed.Dependencies)
	result.AddedBuildDependencies, result.RemovedBuildDependencies = diffDependencies(current.BuildDependencies, committed.BuildDependencies)
	result.AddedRepositories, result.RemovedRepositories = diffRepositories(current.Repositories, committed.Repositories)
	result.AddedBuildRepositories, result.RemovedBuildRepositories = diffRepositories(current.BuildRepositories, committed.BuildRepositories)
	return result
}

// Format renders the result as a human-readable summary.
func (r CheckResult) Format() string {
	if r.InSync() {
		return "Committed report matches the current dependency graph.\n"
	}

	out := "Committed report is out of date:\n"
	out += formatDependencyDiff("dependencies", r.AddedDependencies, r.RemovedDependencies)
	out += formatDependencyDiff("build dependencies", r.AddedBuildDependencies, r.RemovedBuildDependencies)
	out += formatRepositoryDiff("repositories", r.AddedRepositories, r.RemovedRepositories)
	out += formatRepositoryDiff("build repositories", r.AddedBuildRepositories, r.RemovedBuildRepositories)
	return out
}

func diffDependencies(current, committed []types.DependencyIdentifier) (added, removed []types.DependencyIdentifier) {
	inCommitted := make(map[types.DependencyIdentifier]struct{}, len(committed))
	for _, id := range committed {
		inCommitted[id] = struct{}{}
	}
	inCurrent := make(map[types.DependencyIdentifier]struct{}, len(current))
	for _, id := range current {
		inCurrent[id] = struct{}{}
	}

	for _, id := range current {
		if _, ok := inCommitted[id]; !ok {
			added = append(added, id)
		}
	}
	for _, id := range committed {
		if _, ok := inCurrent[id]; !ok {
			removed = append(removed, id)
		}
	}
	return added, removed
}

func diffRepositories(current, committed []types.RepositoryIdentifier) (added, removed []types.RepositoryIdentifier) {
	inCommitted := make(map[string]struct{}, len(committed))
	for _, repo := range committed {
		inCommitted[repo.Name] = struct{}{}
	}
	inCurrent := make(map[string]struct{}, len(current))
	for _, repo := range current {
		inCurrent[repo.Name] = struct{}{}
	}

	for _, repo := range current {
		if _, ok := inCommitted[repo.Name]; !ok {
			added = append(added, repo)
		}
	}
	for _, repo := range committed {
		if _, ok := inCurrent[repo.Name]; !ok {
			removed = append(removed, repo)
		}
	}
	return added, removed
}

func formatDependencyDiff(label string, added, removed []types.DependencyIdentifier) string {
	var out string
	for _, id := range added {
		out += fmt.Sprintf("  + %s (%s, not in report)\n", id, label)
	}
	for _, id := range removed {
		out += fmt.Sprintf("  - %s (%s, no longer in graph)\n", id, label)
	}
	return out
}

func formatRepositoryDiff(label string, added, removed []types.RepositoryIdentifier) string {
	var out string
	for _, repo := range added {
		out += fmt.Sprintf("  + %s (%s, not in report)\n", repo.Name, label)
	}
	for _, repo := range removed {
		out += fmt.Sprintf("  - %s (%s, no longer in graph)\n", repo.Name, label)
	}
	return out
}
