package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svw.info/minesweeper/internal/domain"
)

// FS writes one JSON file per finished game under dir/{won,lost}/.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func outcomeDir(s domain.Status) string {
	switch s {
	case domain.Won:
		return "won"
	case domain.Lost:
		return "lost"
	default:
		return "unfinished"
	}
}

func (s *FS) pathFor(id string, outcome domain.Status) string {
	return filepath.Join(s.dir, outcomeDir(outcome), strings.TrimSpace(id)+".json")
}

func (s *FS) Record(ctx context.Context, rec *domain.GameRecord) error {
	if rec == nil || rec.ID == "" {
		return errors.New("invalid record: missing ID")
	}
	target := s.pathFor(rec.ID, rec.Outcome)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return &domain.OpError{Op: "storage.fs.record", Kind: domain.KindStorage, Path: target, Err: err}
	}
	f, err := os.Create(target)
	if err != nil {
		return &domain.OpError{Op: "storage.fs.record", Kind: domain.KindStorage, Path: target, Err: err}
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// List returns every record, most recently finished first. Unreadable files
// are skipped.
func (s *FS) List(ctx context.Context) ([]domain.GameRecord, error) {
	var out []domain.GameRecord
	for _, bucket := range []domain.Status{domain.Won, domain.Lost} {
		dir := filepath.Join(s.dir, outcomeDir(bucket))
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, &domain.OpError{Op: "storage.fs.list", Kind: domain.KindStorage, Path: dir, Err: err}
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var rec domain.GameRecord
			if err := json.Unmarshal(data, &rec); err != nil || rec.ID == "" {
				continue
			}
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FinishedAt.After(out[j].FinishedAt) })
	return out, nil
}
