package missions

import (
	"regexp"
	"strings"
)

const (
	// minBlockLength drops fragments too short to be an experience block.
	minBlockLength = 50
	// maxBlocks bounds the work done on very long documents.
	maxBlocks = 5
)

// blockSeparator matches runs of 2+ blank lines, the boundary between
// experience blocks.
var blockSeparator = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)

// SegmentBlocks splits a document into experience blocks. Only blocks that
// are at least minBlockLength characters long AND contain a 4-digit year or
// a duration keyword are kept; anything else is silently dropped. At most
// maxBlocks blocks are retained, in document order.
func (e *Extractor) SegmentBlocks(text string) []string {
	parts := blockSeparator.Split(text, -1)

	blocks := make([]string, 0, maxBlocks)
	for _, part := range parts {
		block := strings.TrimSpace(part)
		if len(block) < minBlockLength {
			continue
		}
		if !e.lib.Year.MatchString(block) && !e.lib.DurationKeyword.MatchString(block) {
			// No temporal anchor: recall/precision tradeoff, the block is
			// dropped rather than surfaced as an error.
			continue
		}
		blocks = append(blocks, block)
		if len(blocks) == maxBlocks {
			break
		}
	}
	return blocks
}
