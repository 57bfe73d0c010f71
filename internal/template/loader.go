package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ErrTemplateNotFound is returned when no template exists for a project type
var ErrTemplateNotFound = errors.New("template not found")

// Loader is the single source of truth mapping ProjectType to ContainerTemplate.
// Writers (LoadTemplates, Save, Delete) are mutually exclusive; readers see
// consistent snapshots.
type Loader struct {
	dir       string
	templates map[ProjectType]*ContainerTemplate
	mu        sync.RWMutex
}

// NewLoader creates a loader for the given template directory
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:       dir,
		templates: make(map[ProjectType]*ContainerTemplate),
	}
}

// LoadTemplates reads every template file from the configured directory and
// populates the in-memory cache. Files that fail to parse or validate are
// logged and skipped so a single bad template does not abort the rest.
func (l *Loader) LoadTemplates() ([]*ContainerTemplate, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("dir", l.dir).Msg("Template directory does not exist, starting empty")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read template directory %s: %w", l.dir, err)
	}

	loaded := make(map[ProjectType]*ContainerTemplate)
	for _, entry := range entries {
		if entry.IsDir() || !isTemplateFile(entry.Name()) {
			continue
		}

		path := filepath.Join(l.dir, entry.Name())
		tpl, err := loadTemplateFile(path)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("Skipping invalid template file")
			continue
		}

		if existing, ok := loaded[tpl.ProjectType]; ok {
			log.Warn().
				Str("project_type", string(tpl.ProjectType)).
				Str("kept", existing.ID).
				Str("replaced_by", tpl.ID).
				Msg("Duplicate template for project type, last file wins")
		}
		loaded[tpl.ProjectType] = tpl
	}

	l.templates = loaded

	result := make([]*ContainerTemplate, 0, len(loaded))
	for _, tpl := range loaded {
		result = append(result, tpl)
	}

	log.Info().Int("count", len(result)).Str("dir", l.dir).Msg("Templates loaded")
	return result, nil
}

// Get returns the cached template for a project type. Pure in-memory lookup,
// never touches disk.
func (l *Loader) Get(projectType ProjectType) (*ContainerTemplate, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tpl, ok := l.templates[projectType]
	if !ok {
		return nil, fmt.Errorf("no template for project type %q: %w", projectType, ErrTemplateNotFound)
	}
	return tpl, nil
}

// All returns a snapshot of every cached template in no guaranteed order
func (l *Loader) All() []*ContainerTemplate {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]*ContainerTemplate, 0, len(l.templates))
	for _, tpl := range l.templates {
		result = append(result, tpl)
	}
	return result
}

// Save validates the template, persists it to the backing store keyed by
// template id and updates the cache. The previous template for the same
// project type, if any, is overwritten.
func (l *Loader) Save(tpl *ContainerTemplate) error {
	if err := Validate(tpl); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	if tpl.CreatedAt.IsZero() {
		tpl.CreatedAt = now
	}
	tpl.UpdatedAt = now

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("failed to create template directory: %w", err)
	}

	data, err := yaml.Marshal(tpl)
	if err != nil {
		return fmt.Errorf("failed to marshal template %s: %w", tpl.ID, err)
	}

	path := l.pathFor(tpl.ID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write template file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to persist template file: %w", err)
	}

	// Last save wins per project type. When the replaced template had a
	// different id, drop its now-stale file.
	if old, ok := l.templates[tpl.ProjectType]; ok && old.ID != tpl.ID {
		if err := os.Remove(l.pathFor(old.ID)); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("template", old.ID).Msg("Failed to remove replaced template file")
		}
	}
	l.templates[tpl.ProjectType] = tpl

	log.Info().
		Str("template", tpl.ID).
		Str("project_type", string(tpl.ProjectType)).
		Msg("Template saved")
	return nil
}

// Delete removes the cached template and its backing file. Deleting a project
// type with no template is a no-op, not an error.
func (l *Loader) Delete(projectType ProjectType) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tpl, ok := l.templates[projectType]
	if !ok {
		return nil
	}

	if err := os.Remove(l.pathFor(tpl.ID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove template file for %s: %w", tpl.ID, err)
	}

	delete(l.templates, projectType)
	log.Info().
		Str("template", tpl.ID).
		Str("project_type", string(projectType)).
		Msg("Template deleted")
	return nil
}

func (l *Loader) pathFor(id string) string {
	return filepath.Join(l.dir, id+".yaml")
}

func isTemplateFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// loadTemplateFile parses and validates a single template file
func loadTemplateFile(path string) (*ContainerTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}

	var tpl ContainerTemplate
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("failed to parse template file: %w", err)
	}

	if err := Validate(&tpl); err != nil {
		return nil, err
	}

	return &tpl, nil
}
