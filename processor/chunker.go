package processor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"labelguard-backend/models"
)

const (
	// Texts shorter than this are stored whole; too short to segment.
	shortTextRunes = 200
	// Trimmed spans at or below this length are treated as noise.
	minChunkRunes = 50
	// Stored chunk texts are capped at this length.
	maxChunkRunes = 2000
	// Window size for the fixed-width fallback.
	fallbackWindowRunes = 800
)

// clausePattern pairs a header regexp with the boundary regexp that ends a
// span. A span runs from a header match to the next boundary match or end
// of text. The boundary is looser than the header on purpose: a bare
// "제5조" token terminates the preceding article span even when it does not
// open a well-formed article itself.
type clausePattern struct {
	header   *regexp.Regexp
	boundary *regexp.Regexp
}

// Boundary patterns for Korean statute structure, applied in declaration
// order: numbered articles (제N조, optionally 제N조의M), schedules (별표 N),
// and addenda (부칙).
var clausePatterns = []clausePattern{
	{header: regexp.MustCompile(`제\d+조(?:의\d+)?[\s(]`), boundary: regexp.MustCompile(`제\d+조`)},
	{header: regexp.MustCompile(`별표\s*\d+`), boundary: regexp.MustCompile(`별표\s*\d+`)},
	{header: regexp.MustCompile(`부칙`), boundary: regexp.MustCompile(`부칙`)},
}

// ChunkLegalText splits raw regulation text into clause-tagged chunks.
// It is a pure function: identical input always yields the identical chunk
// sequence and indices. All length arithmetic is in runes, not bytes.
func ChunkLegalText(text string) []models.KnowledgeChunk {
	if utf8.RuneCountInString(text) < shortTextRunes {
		return []models.KnowledgeChunk{{Idx: 0, Text: text}}
	}

	found := matchClauseSpans(text)

	var chunks []models.KnowledgeChunk
	if len(found) > 0 {
		// The index counts every matched span, so filtered noise leaves
		// gaps while order stays strictly increasing.
		for i, span := range found {
			if utf8.RuneCountInString(span) > minChunkRunes {
				chunks = append(chunks, models.KnowledgeChunk{Idx: i, Text: truncateRunes(span, maxChunkRunes)})
			}
		}
	} else {
		runes := []rune(text)
		for start := 0; start < len(runes); start += fallbackWindowRunes {
			end := start + fallbackWindowRunes
			if end > len(runes) {
				end = len(runes)
			}
			window := strings.TrimSpace(string(runes[start:end]))
			if window != "" {
				chunks = append(chunks, models.KnowledgeChunk{Idx: len(chunks), Text: window})
			}
		}
	}

	if len(chunks) == 0 {
		return []models.KnowledgeChunk{{Idx: 0, Text: truncateRunes(text, maxChunkRunes)}}
	}
	return chunks
}

// matchClauseSpans collects trimmed clause spans for every pattern,
// concatenated in pattern-declaration order rather than interleaved by
// source position.
func matchClauseSpans(text string) []string {
	var spans []string
	for _, pat := range clausePatterns {
		headers := pat.header.FindAllStringIndex(text, -1)
		for _, h := range headers {
			end := len(text)
			if next := pat.boundary.FindStringIndex(text[h[1]:]); next != nil {
				end = h[1] + next[0]
			}
			spans = append(spans, strings.TrimSpace(text[h[0]:end]))
		}
	}
	return spans
}

// truncateRunes caps s at n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
