package pipeline

// Stage names reported to observers.
const (
	StageFetch     = "fetch"
	StageExtract   = "extract"
	StageResolve   = "resolve"
	StageSummarize = "summarize"
)

// Observer receives progress events from a pipeline run. It exists for
// external progress indicators only; observer behavior never affects
// pipeline results.
type Observer interface {
	StageStarted(stage string, total int)
	ItemDone(stage string, done, total int)
	StageCompleted(stage string, produced int)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) StageStarted(string, int)   {}
func (NopObserver) ItemDone(string, int, int)  {}
func (NopObserver) StageCompleted(string, int) {}

func ensureObserver(obs Observer) Observer {
	if obs == nil {
		return NopObserver{}
	}
	return obs
}
