package activities

import "go.temporal.io/sdk/worker"

func (a *Activities) Register(w worker.Worker) {
	w.RegisterActivity(a.GenerateAnalysisActivity)
	w.RegisterActivity(a.SaveAnalysisActivity)
}
