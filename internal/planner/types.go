package planner

import (
	"shaadiAi/internal/budget"
	"shaadiAi/internal/vision"
)

// Kind identifies one independent unit of generation work within a
// blueprint run.
type Kind string

const (
	KindCeremonyImage   Kind = "ceremony-image"
	KindReceptionImage  Kind = "reception-image"
	KindDetailImage     Kind = "detail-image"
	KindSummary         Kind = "summary"
	KindRecommendations Kind = "recommendations"
	KindTimeline        Kind = "timeline"
	KindBudgetSplit     Kind = "budget-split"
)

// Subtasks lists every blueprint sub-task in composite-result order.
var Subtasks = []Kind{
	KindCeremonyImage,
	KindReceptionImage,
	KindDetailImage,
	KindSummary,
	KindRecommendations,
	KindTimeline,
	KindBudgetSplit,
}

// Summary is the narrative description of the planned wedding.
type Summary struct {
	Text string `json:"summary"`
}

// Recommendations groups vendor-style suggestions per category.
type Recommendations struct {
	Venue       []string `json:"venue"`
	Catering    []string `json:"catering"`
	Photography []string `json:"photography"`
	Decor       []string `json:"decor"`
}

// TimelineEntry is one scheduled moment on the wedding day.
type TimelineEntry struct {
	Time  string `json:"time"`
	Event string `json:"event"`
}

// Blueprint aggregates every sub-task result into the single object the UI
// consumes. Every field is always populated: either with generated content
// or with the deterministic fallback.
type Blueprint struct {
	Summary         Summary            `json:"summary"`
	CeremonyImage   vision.ImageHandle `json:"ceremony_image"`
	ReceptionImage  vision.ImageHandle `json:"reception_image"`
	DetailImage     vision.ImageHandle `json:"detail_image"`
	Recommendations Recommendations    `json:"recommendations"`
	Timeline        []TimelineEntry    `json:"timeline"`
	BudgetBreakdown budget.Breakdown   `json:"budget_breakdown"`
}

// ImagesResult is the narrow theme-images response. Images are populated
// even on failure, from the fallback pool. Sources carries one
// browser-displayable string per handle so the UI never inspects the
// payload variant.
type ImagesResult struct {
	Success bool                 `json:"success"`
	Images  []vision.ImageHandle `json:"images"`
	Sources []string             `json:"sources"`
	Error   string               `json:"error,omitempty"`
}

func imagesResult(success bool, images []vision.ImageHandle, errText string) ImagesResult {
	sources := make([]string, len(images))
	for i, img := range images {
		sources[i] = img.DataURL()
	}
	return ImagesResult{Success: success, Images: images, Sources: sources, Error: errText}
}
