package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// RunRecord is one full build of the tree: identity, timing, tree shape and
// the root's aggregate probabilities. Summary rows are all that is ever
// written; the tree itself is never persisted.
type RunRecord struct {
	ID            uuid.UUID
	StartTime     time.Time
	BuildDuration time.Duration
	XWins         float64
	OWins         float64
	Ties          float64
	TreeMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp and
// returns a writer targeting it.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create metrics directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// WriteRun writes the record as a single-row CSV file in the writer's
// directory.
func (w *Writer) WriteRun(record RunRecord) error {
	path := filepath.Join(w.baseDir, "run.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"id", "start_time", "build_duration",
		"nodes", "leaves", "x_win_leaves", "o_win_leaves", "tie_leaves", "max_depth",
		"x_wins", "o_wins", "ties",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write run header: %w", err)
	}

	row := []string{
		record.ID.String(),
		record.StartTime.UTC().Format(time.RFC3339),
		record.BuildDuration.String(),
		strconv.Itoa(record.Nodes),
		strconv.Itoa(record.Leaves),
		strconv.Itoa(record.XWinLeaves),
		strconv.Itoa(record.OWinLeaves),
		strconv.Itoa(record.TieLeaves),
		strconv.Itoa(record.MaxDepth),
		strconv.FormatFloat(record.XWins, 'f', -1, 64),
		strconv.FormatFloat(record.OWins, 'f', -1, 64),
		strconv.FormatFloat(record.Ties, 'f', -1, 64),
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("failed to write run record: %w", err)
	}

	writer.Flush()
	return writer.Error()
}
