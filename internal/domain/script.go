package domain

// Section is one narration and visual unit of a script.
type Section struct {
	ID          int
	Narration   string
	UIComponent UIComponent
}

type Script struct {
	Sections []Section
}

// Stage is a step of the rewind pipeline.
type Stage string

const (
	StageQueued            Stage = "queued"
	StageBuildingFeed      Stage = "building_feed"
	StageGeneratingScript  Stage = "generating_script"
	StageRenderingSections Stage = "rendering_sections"
	StageReconciling       Stage = "reconciling"
	StageCached            Stage = "cached"
	StageReturned          Stage = "returned"

	// sub-stages of a section, used for timeouts
	StageNarration Stage = "narration"
	StageResolve   Stage = "resolve"
	StageAlignment Stage = "alignment"
	StageRequest   Stage = "request"
)

// Observer receives pipeline progress. Section is -1 outside the section loop.
type Observer func(stage Stage, section int)
