package reporter

// Reporter defines the interface for progress reporting.
type Reporter interface {
	Hardware(summary HardwareSummary)
	BatchStarted(info BatchStartInfo)
	FileProgress(context FileProgressContext)
	VideoInfo(summary VideoSummary)
	AnalysisStarted(totalFrames uint64)
	AnalysisProgress(progress ProgressSnapshot)
	ArtifactsWritten(summary ArtifactSummary)
	ValidationComplete(summary ValidationSummary)
	Warning(message string)
	Error(err ReporterError)
	BatchComplete(summary BatchSummary)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) Hardware(HardwareSummary)             {}
func (NullReporter) BatchStarted(BatchStartInfo)          {}
func (NullReporter) FileProgress(FileProgressContext)     {}
func (NullReporter) VideoInfo(VideoSummary)               {}
func (NullReporter) AnalysisStarted(uint64)               {}
func (NullReporter) AnalysisProgress(ProgressSnapshot)    {}
func (NullReporter) ArtifactsWritten(ArtifactSummary)     {}
func (NullReporter) ValidationComplete(ValidationSummary) {}
func (NullReporter) Warning(string)                       {}
func (NullReporter) Error(ReporterError)                  {}
func (NullReporter) BatchComplete(BatchSummary)           {}
