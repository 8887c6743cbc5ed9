package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// ExportSchema identifies the parquet layout written by ExportParquet.
const ExportSchema = "pong_match_v1"

// MatchRow is the parquet form of a journal entry.
type MatchRow struct {
	ID           int64  `parquet:"id"`
	StartedAtMS  int64  `parquet:"started_at_ms"`
	DurationMS   int64  `parquet:"duration_ms"`
	Frontend     string `parquet:"frontend,dict"`
	Player       string `parquet:"player,dict"`
	LeftScore    int32  `parquet:"left_score"`
	RightScore   int32  `parquet:"right_score"`
	Winner       string `parquet:"winner,dict"`
	EndReason    string `parquet:"end_reason,dict"`
	PaddleHits   int32  `parquet:"paddle_hits"`
	WallHits     int32  `parquet:"wall_hits"`
	LongestRally int32  `parquet:"longest_rally"`
}

// RowFromMatch converts a journal entry to its parquet row.
func RowFromMatch(m Match) MatchRow {
	return MatchRow{
		ID:           m.ID,
		StartedAtMS:  m.StartedAt.UnixMilli(),
		DurationMS:   m.Duration.Milliseconds(),
		Frontend:     m.Frontend,
		Player:       m.Player,
		LeftScore:    int32(m.LeftScore),
		RightScore:   int32(m.RightScore),
		Winner:       m.Winner,
		EndReason:    m.EndReason,
		PaddleHits:   int32(m.PaddleHits),
		WallHits:     int32(m.WallHits),
		LongestRally: int32(m.LongestRally),
	}
}

// ExportParquet writes the whole journal to outPath and returns the number
// of rows written. The file is written to a temp path and renamed.
func (s *Store) ExportParquet(outPath string) (int, error) {
	matches, err := s.AllMatches()
	if err != nil {
		return 0, err
	}

	rows := make([]MatchRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, RowFromMatch(m))
	}

	if err := WriteParquet(outPath, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// WriteParquet writes rows to outPath atomically.
func WriteParquet(outPath string, rows []MatchRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("storage: create export dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", ExportSchema),
	); err != nil {
		return fmt.Errorf("storage: write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("storage: rename parquet: %w", err)
	}
	return nil
}
