// ABOUTME: Daily log backups stored as JSON snapshots in a KV store
// ABOUTME: Pushes local day files and restores days missing on this machine
package charm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/harper/worklog/internal/worklog"
)

// LogPrefix is the key prefix for daily log snapshots.
const LogPrefix = "log:"

// Store is the subset of the KV client used for backups.
type Store interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	Keys() ([][]byte, error)
}

// Snapshot is the stored form of one daily log.
type Snapshot struct {
	ID       string    `json:"id"`
	Day      string    `json:"day"`
	Content  string    `json:"content"`
	Host     string    `json:"host"`
	PushedAt time.Time `json:"pushed_at"`
}

// Backup copies daily logs between the log root and a Store.
type Backup struct {
	store  Store
	root   string
	loc    *time.Location
	logger *log.Logger
	now    func() time.Time
}

// NewBackup creates a backup for the logs under root.
func NewBackup(store Store, root string, logger *log.Logger) *Backup {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Backup{
		store:  store,
		root:   root,
		loc:    time.Local,
		logger: logger,
		now:    time.Now,
	}
}

func logKey(day string) []byte {
	return []byte(LogPrefix + day)
}

// PushResult summarizes a push.
type PushResult struct {
	SnapshotID string
	Pushed     int
	Unchanged  int
}

// Push stores every local day whose content differs from its snapshot.
// All snapshots written by one push share an ID.
func (b *Backup) Push() (PushResult, error) {
	days, err := worklog.Days(b.root, b.loc)
	if err != nil {
		return PushResult{}, fmt.Errorf("list days: %w", err)
	}

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	res := PushResult{SnapshotID: uuid.New().String()}

	for _, day := range days {
		name := day.Date.Format("2006-01-02")
		content, err := worklog.NewLogFile(day.Path).Content()
		if err != nil {
			return res, err
		}
		if content == "" {
			continue
		}

		if prev, err := b.snapshot(name); err == nil && prev.Content == content {
			res.Unchanged++
			continue
		}

		data, err := json.Marshal(Snapshot{
			ID:       res.SnapshotID,
			Day:      name,
			Content:  content,
			Host:     host,
			PushedAt: b.now(),
		})
		if err != nil {
			return res, fmt.Errorf("marshal: %w", err)
		}
		if err := b.store.Set(logKey(name), data); err != nil {
			return res, fmt.Errorf("push %s: %w", name, err)
		}
		b.logger.Debug("pushed day", "day", name, "bytes", len(content))
		res.Pushed++
	}
	return res, nil
}

// Forget drops the snapshot of a day whose local log was deleted, so a later
// pull does not bring it back.
func (b *Backup) Forget(day time.Time) error {
	name := day.Format("2006-01-02")
	if err := b.store.Delete(logKey(name)); err != nil {
		return fmt.Errorf("forget %s: %w", name, err)
	}
	b.logger.Debug("forgot day", "day", name)
	return nil
}

func (b *Backup) snapshot(day string) (*Snapshot, error) {
	data, err := b.store.Get(logKey(day))
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", day, err)
	}
	return &snap, nil
}

// Snapshots returns all stored snapshots ordered by day, newest first.
func (b *Backup) Snapshots() ([]Snapshot, error) {
	keys, err := b.store.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	var snaps []Snapshot
	prefix := []byte(LogPrefix)
	for _, key := range keys {
		if !bytes.HasPrefix(key, prefix) {
			continue
		}
		snap, err := b.snapshot(strings.TrimPrefix(string(key), LogPrefix))
		if err != nil {
			// Skip invalid snapshots (corrupted data)
			b.logger.Warn("skipping unreadable snapshot", "key", string(key), "err", err)
			continue
		}
		snaps = append(snaps, *snap)
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].Day > snaps[j].Day
	})
	return snaps, nil
}

// PullResult summarizes a pull.
type PullResult struct {
	Restored []string
	Skipped  []string
}

// Pull writes snapshots to their daily log paths. Existing non-empty logs are
// kept unless force is set.
func (b *Backup) Pull(force bool) (PullResult, error) {
	snaps, err := b.Snapshots()
	if err != nil {
		return PullResult{}, err
	}

	var res PullResult
	for _, snap := range snaps {
		day, err := time.ParseInLocation("2006-01-02", snap.Day, b.loc)
		if err != nil {
			b.logger.Warn("skipping snapshot with bad day", "day", snap.Day)
			continue
		}
		file := worklog.NewLogFile(worklog.PathFor(b.root, day))

		empty, err := file.Empty()
		if err != nil {
			return res, err
		}
		if !empty && !force {
			res.Skipped = append(res.Skipped, snap.Day)
			continue
		}

		if err := writeFile(file.Path(), snap.Content); err != nil {
			return res, fmt.Errorf("restore %s: %w", snap.Day, err)
		}
		res.Restored = append(res.Restored, snap.Day)
	}
	return res, nil
}

func writeFile(path, content string) error {
	if content == "" {
		return errors.New("empty snapshot")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return err
	}
	return os.WriteFile(path, []byte(content), 0644) //nolint:gosec // Log files are user-readable
}
