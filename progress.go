package soliddocs

// SearchStage identifies a step of the search pipeline.
type SearchStage string

// Search pipeline stages in execution order. StageCacheHit and StageFetching
// are mutually exclusive; StageFetched follows StageFetching.
const (
	StageResolving SearchStage = "resolving"
	StageCacheHit  SearchStage = "cache_hit"
	StageFetching  SearchStage = "fetching"
	StageFetched   SearchStage = "fetched"
	StageSearching SearchStage = "searching"
)

// SearchProgress reports progress as the search pipeline advances.
// Detail carries the topic, cache path, or resolved pattern depending on
// the stage.
type SearchProgress struct {
	Stage  SearchStage
	Detail string
}

// SearchProgressFunc is called as pipeline stages are entered.
type SearchProgressFunc func(SearchProgress)
