package models

import "time"

// KnowledgeChunk is one addressable span of regulation text. Idx is the
// chunk's position in the chunker's match order; it stays strictly
// increasing within a snapshot but may skip values where noise spans
// were discarded.
type KnowledgeChunk struct {
	Idx  int    `json:"idx"`
	Text string `json:"text"`
}

// KnowledgeSnapshot is the persisted knowledge-base record for one
// regulation document. A new save fully replaces the prior snapshot for
// the same key.
type KnowledgeSnapshot struct {
	DocKey         string           `json:"doc_key"`
	Filename       string           `json:"filename"`
	FullTextLength int              `json:"full_text_length"`
	Chunks         []KnowledgeChunk `json:"chunks"`
	Updated        time.Time        `json:"updated"`
}
