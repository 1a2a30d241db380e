package framework

import (
	"fmt"
	"strings"
)

// ScenarioID identifies a scenario by its path of names within the suite.
type ScenarioID struct {
	Path []string
}

func (id ScenarioID) String() string {
	return strings.Join(id.Path, "/")
}

// ScenarioResult is the outcome of a single scenario.
type ScenarioResult struct {
	ID      ScenarioID
	Errors  []error
	Skipped bool
}

// Results accumulates the outcomes of every scenario that was executed.
type Results struct {
	Scenarios []ScenarioResult
	Failures  []ScenarioResult
}

// OK returns true if no scenario failed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// ScenarioFailure associates an error with the scenario that raised it.
type ScenarioFailure struct {
	ID  ScenarioID
	Err error
}

func (f ScenarioFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
