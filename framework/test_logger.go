package framework

// TestLogger receives notifications about scenario progress. The console
// implementation lives in the main package.
type TestLogger interface {
	ScenarioStarted(id ScenarioID)
	ScenarioError(id ScenarioID, err error)
	ScenarioFinished(id ScenarioID, failed bool, debugOutput CapturedOutput)
	ScenarioSkipped(id ScenarioID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) ScenarioStarted(ScenarioID)                        {}
func (n nullTestLogger) ScenarioError(ScenarioID, error)                   {}
func (n nullTestLogger) ScenarioFinished(ScenarioID, bool, CapturedOutput) {}
func (n nullTestLogger) ScenarioSkipped(ScenarioID, string)                {}
