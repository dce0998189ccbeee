package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Setup describes an arena run.
type Setup struct {
	Board     string        `yaml:"board"`
	Players   []string      `yaml:"players"`
	Games     int           `yaml:"games"`
	Seed      int64         `yaml:"seed"`
	MaxTurns  int           `yaml:"maxTurns"`
	StartTime time.Time     `yaml:"startTime"`
	EndTime   time.Time     `yaml:"endTime"`
	Duration  time.Duration `yaml:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter stores results in a subfolder of dir named by the current time.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.yaml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return encoder.Close()
}

func (w *Writer) WriteGameRecords(records []GameMetric) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "seed", "board", "players", "winner", "turns", "battles", "attacks", "captures", "maneuvers", "start_time", "end_time", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			strconv.FormatInt(record.Seed, 10),
			record.Board,
			strings.Join(record.Players, ";"),
			record.Winner,
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Battles),
			strconv.Itoa(record.Attacks),
			strconv.Itoa(record.Captures),
			strconv.Itoa(record.Maneuvers),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}
