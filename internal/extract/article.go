package extract

// Article is the structured result of one extraction call. It is built once
// per call and never mutated afterwards; callers hand it straight to the
// narration pipeline.
type Article struct {
	Title         string
	Author        string
	PublishedDate string
	Body          string
	// Summary is reserved for future use; the engine never sets it.
	Summary   string
	SourceURL string
}
