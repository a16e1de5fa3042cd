package reporter

// CompositeReporter fans out events to multiple reporters.
type CompositeReporter struct {
	reporters []Reporter
}

// NewCompositeReporter creates a composite reporter.
func NewCompositeReporter(reporters ...Reporter) *CompositeReporter {
	return &CompositeReporter{reporters: reporters}
}

func (c *CompositeReporter) Hardware(summary HardwareSummary) {
	for _, r := range c.reporters {
		r.Hardware(summary)
	}
}

func (c *CompositeReporter) BatchStarted(info BatchStartInfo) {
	for _, r := range c.reporters {
		r.BatchStarted(info)
	}
}

func (c *CompositeReporter) FileProgress(context FileProgressContext) {
	for _, r := range c.reporters {
		r.FileProgress(context)
	}
}

func (c *CompositeReporter) VideoInfo(summary VideoSummary) {
	for _, r := range c.reporters {
		r.VideoInfo(summary)
	}
}

func (c *CompositeReporter) AnalysisStarted(totalFrames uint64) {
	for _, r := range c.reporters {
		r.AnalysisStarted(totalFrames)
	}
}

func (c *CompositeReporter) AnalysisProgress(progress ProgressSnapshot) {
	for _, r := range c.reporters {
		r.AnalysisProgress(progress)
	}
}

func (c *CompositeReporter) ArtifactsWritten(summary ArtifactSummary) {
	for _, r := range c.reporters {
		r.ArtifactsWritten(summary)
	}
}

func (c *CompositeReporter) ValidationComplete(summary ValidationSummary) {
	for _, r := range c.reporters {
		r.ValidationComplete(summary)
	}
}

func (c *CompositeReporter) Warning(message string) {
	for _, r := range c.reporters {
		r.Warning(message)
	}
}

func (c *CompositeReporter) Error(err ReporterError) {
	for _, r := range c.reporters {
		r.Error(err)
	}
}

func (c *CompositeReporter) BatchComplete(summary BatchSummary) {
	for _, r := range c.reporters {
		r.BatchComplete(summary)
	}
}
