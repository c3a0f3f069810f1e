// Package stages defines the canonical pipeline stage order, the progress
// band mapping, and the persisted stage machine.
package stages

import "github.com/scribeflow/scribeflow/ent/task"

// StageType names one pipeline step.
type StageType string

// Pipeline stages in canonical order.
const (
	StageResolve       StageType = "resolve"
	StageDownload      StageType = "download"
	StageTranscode     StageType = "transcode"
	StageUploadStorage StageType = "upload_storage"
	StageTranscribe    StageType = "transcribe"
	StageSummarize     StageType = "summarize"
	StageVisualize     StageType = "visualize"
)

// OrderFor returns the stage sequence for a task. URL sources start with
// resolve; uploads are already in object storage, so the pipeline starts at
// transcode after fetching the object. Visualization tasks run a single
// stage on the same machinery.
func OrderFor(kind task.Kind, sourceType task.SourceType) []StageType {
	if kind == task.KindVisualize {
		return []StageType{StageVisualize}
	}
	if sourceType == task.SourceTypeURL {
		return []StageType{StageResolve, StageDownload, StageTranscode, StageUploadStorage, StageTranscribe, StageSummarize}
	}
	return []StageType{StageDownload, StageTranscode, StageUploadStorage, StageTranscribe, StageSummarize}
}

// StatusFor maps a running stage to the observable task status.
func StatusFor(stage StageType) task.Status {
	switch stage {
	case StageResolve, StageDownload, StageTranscode, StageUploadStorage:
		return task.StatusExtracting
	case StageTranscribe:
		return task.StatusTranscribing
	case StageSummarize, StageVisualize:
		return task.StatusSummarizing
	default:
		return task.StatusPending
	}
}

// stageCeiling is each stage's progress upper bound. Extraction subdivides
// the 0-20 band; transcribe owns 20-70 and summarize 70-99. 100 is reserved
// for task completion.
var stageCeiling = map[StageType]int{
	StageResolve:       5,
	StageDownload:      12,
	StageTranscode:     16,
	StageUploadStorage: 20,
	StageTranscribe:    70,
	StageSummarize:     99,
	StageVisualize:     99,
}

// Band returns the [lo, hi] progress range of a stage.
func Band(stage StageType) (lo, hi int) {
	hi, ok := stageCeiling[stage]
	if !ok {
		return 0, 0
	}
	switch stage {
	case StageResolve, StageVisualize:
		lo = 0
	case StageDownload:
		lo = stageCeiling[StageResolve]
	case StageTranscode:
		lo = stageCeiling[StageDownload]
	case StageUploadStorage:
		lo = stageCeiling[StageTranscode]
	case StageTranscribe:
		lo = stageCeiling[StageUploadStorage]
	case StageSummarize:
		lo = stageCeiling[StageTranscribe]
	}
	return lo, hi
}

// ProgressAt maps a stage-local fraction in [0,1] into the stage's band.
func ProgressAt(stage StageType, fraction float64) int {
	lo, hi := Band(stage)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return lo + int(fraction*float64(hi-lo))
}

// Index returns the position of stage in order, or -1.
func Index(order []StageType, stage StageType) int {
	for i, s := range order {
		if s == stage {
			return i
		}
	}
	return -1
}
