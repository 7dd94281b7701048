// Package project loads and validates project plan files. It is the input
// layer in front of the scheduling engine: it turns a user-authored YAML
// document into a normalized model.Project and rejects malformed entries
// with file-oriented errors before any scheduling runs. The engine
// re-validates everything it depends on; the checks here exist so a bad
// file fails fast with a message pointing at the file, not the algorithm.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mlefevre/pertcalc/internal/model"
)

// maxCodeLen mirrors the historical limit on task codes.
const maxCodeLen = 10

// DefaultMaxTasks bounds how many tasks a single file may declare, to keep
// adversarial input from exhausting memory. Override with WithMaxTasks.
const DefaultMaxTasks = 10000

// Loader reads project plan files.
type Loader struct {
	logger   *zap.Logger
	maxTasks int
}

// Option configures a Loader.
type Option func(*Loader)

// WithMaxTasks overrides the per-file task limit. A limit of zero or less
// disables the bound.
func WithMaxTasks(n int) Option {
	return func(l *Loader) { l.maxTasks = n }
}

// NewLoader creates a project file loader.
func NewLoader(logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		logger:   logger.Named("project"),
		maxTasks: DefaultMaxTasks,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and validates the project file at path. The project name
// defaults to the file name when the document does not set one.
func (l *Loader) Load(path string) (*model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}

	p, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if p.Name == "" {
		base := filepath.Base(path)
		p.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	l.logger.Debug("loaded project",
		zap.String("path", path),
		zap.String("name", p.Name),
		zap.Int("tasks", len(p.Tasks)))

	return p, nil
}

// Parse decodes and validates a project document.
func (l *Loader) Parse(data []byte) (*model.Project, error) {
	var p model.Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse project file: %w", err)
	}

	if err := l.validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// validate applies the form-level rules: codes present, bounded and unique
// after normalization, names present, durations at least one day, and
// dependencies restricted to other tasks of the same project.
func (l *Loader) validate(p *model.Project) error {
	if len(p.Tasks) == 0 {
		return ErrNoTasks
	}
	if l.maxTasks > 0 && len(p.Tasks) > l.maxTasks {
		return fmt.Errorf("%w: %d tasks, limit %d", ErrTooManyTasks, len(p.Tasks), l.maxTasks)
	}

	seen := make(map[string]bool, len(p.Tasks))
	for i := range p.Tasks {
		t := &p.Tasks[i]
		code := model.NormalizeCode(t.Code)

		switch {
		case code == "":
			return fmt.Errorf("task #%d: %w", i+1, ErrMissingCode)
		case len(code) > maxCodeLen:
			return fmt.Errorf("task %q: %w (max %d characters)", code, ErrCodeTooLong, maxCodeLen)
		case strings.TrimSpace(t.Name) == "":
			return fmt.Errorf("task %q: %w", code, ErrMissingName)
		case t.Duration < 1:
			return fmt.Errorf("task %q: %w (got %d)", code, ErrInvalidDuration, t.Duration)
		case seen[code]:
			return fmt.Errorf("task %q: %w", code, ErrDuplicateCode)
		}
		seen[code] = true

		// Store the canonical form back so downstream layers see one
		// spelling.
		t.Code = code
	}

	for i := range p.Tasks {
		t := &p.Tasks[i]
		for j, raw := range t.Dependencies {
			dep := model.NormalizeCode(raw)
			if dep == t.Code {
				return fmt.Errorf("task %q: %w", t.Code, ErrSelfDependency)
			}
			if !seen[dep] {
				return fmt.Errorf("task %q: %w: %q", t.Code, ErrUnknownDependency, dep)
			}
			t.Dependencies[j] = dep
		}
	}

	return nil
}
