package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the scenario-scoped equivalent of testing.T. Assertion
// libraries can use it through the Errorf and FailNow methods; everything
// else is specific to this harness.
type Context struct {
	env         *environment
	id          ScenarioID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	deferred    []func()
}

// Run executes a suite function against a fresh root Context and returns the
// accumulated results. Scenarios execute strictly in the order of the Run
// calls the suite function makes.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil && !c.skipped {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				// deliberate exit via FailNow
				if len(c.errors) == 0 {
					addError = errors.New("scenario failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in scenario: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.ScenarioError(c.id, addError)
			}
		}

		for i := len(c.deferred) - 1; i >= 0; i-- {
			c.deferred[i]()
		}

		// The root context only produces a result of its own if something
		// failed outside of any scenario.
		if len(c.id.Path) > 0 || c.failed {
			result := ScenarioResult{ID: c.id, Errors: c.errors, Skipped: c.skipped}
			c.env.results.Scenarios = append(c.env.results.Scenarios, result)
			if c.failed {
				c.env.results.Failures = append(c.env.results.Failures, result)
			}
		}
	}()

	action(c)
}

func (c *Context) ID() ScenarioID {
	return c.id
}

// Run executes a child scenario immediately, unless the filter excludes it.
// A failure in the child is recorded in the results but does not affect the
// caller.
func (c *Context) Run(name string, action func(*Context)) {
	id := ScenarioID{Path: append(append([]string(nil), c.id.Path...), name)}

	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.ScenarioSkipped(id, "excluded by filter parameters")
		return
	}
	c.env.testLogger.ScenarioStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.ScenarioSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.ScenarioFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf is called by assertions to record a failure. It does not cause an
// immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.ScenarioError(c.id, reformatError(err))
}

// FailNow aborts the current scenario. The methods in the require package
// call FailNow.
func (c *Context) FailNow() {
	c.failed = true
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Defer schedules a cleanup function to run when the scenario ends,
// regardless of whether it passed, failed, or was skipped.
func (c *Context) Defer(cleanup func()) {
	c.deferred = append(c.deferred, cleanup)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// reformatError removes the trailing whitespace that testify's multi-line
// failure messages tend to carry, so the console output stays tidy.
func reformatError(err error) error {
	lines := strings.Split(strings.TrimRight(err.Error(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return errors.New(strings.Join(lines, "\n"))
}
