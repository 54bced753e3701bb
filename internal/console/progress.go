package console

import (
	"fmt"
	"io"
	"strings"
)

const barCells = 50

// ProgressBar redraws a single-line bar on every call
type ProgressBar struct {
	w io.Writer
}

// NewProgressBar creates a bar drawing to w
func NewProgressBar(w io.Writer) *ProgressBar {
	return &ProgressBar{w: w}
}

// Update draws "Processing: [███---] done of total legislators"
func (b *ProgressBar) Update(done, total int) {
	_, _ = fmt.Fprintf(b.w, "\rProcessing: [%s] %d of %d legislators", Bar(done, total), done, total)
}

// Bar renders the 50-cell bar for done out of total
func Bar(done, total int) string {
	filled := 0
	if total > 0 {
		filled = done * barCells / total
	}
	filled = max(0, min(filled, barCells))
	return strings.Repeat("█", filled) + strings.Repeat("-", barCells-filled)
}
