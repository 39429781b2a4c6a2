package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logDirPerm  = 0o750
	logFilePerm = 0o600
)

// LogRotator is an append-only log file that rolls over once it grows past
// maxSize. Rolled files are named <base>.<timestamp> and only the newest
// maxBackups are kept.
type LogRotator struct {
	mu         sync.Mutex
	dir        string
	base       string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
}

// NewLogRotator opens (or creates) dir/base for appending.
func NewLogRotator(dir, base string, maxSizeMB, maxBackups int) (*LogRotator, error) {
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	r := &LogRotator{
		dir:        dir,
		base:       base,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the active log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.dir, r.base)
}

func (r *LogRotator) open() error {
	f, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

// Write implements io.Writer.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.roll(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) roll() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	rolled := fmt.Sprintf("%s.%s", r.Path(), time.Now().Format("20060102-150405.000"))
	if err := os.Rename(r.Path(), rolled); err != nil {
		return fmt.Errorf("roll log file: %w", err)
	}
	r.prune()
	return r.open()
}

// prune removes rolled files beyond maxBackups, oldest first.
func (r *LogRotator) prune() {
	if r.maxBackups <= 0 {
		return
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	var rolled []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), r.base+".") {
			rolled = append(rolled, e.Name())
		}
	}
	if len(rolled) <= r.maxBackups {
		return
	}
	// Timestamps sort lexically.
	sort.Strings(rolled)
	for _, name := range rolled[:len(rolled)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.dir, name))
	}
}

// Close closes the active file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
