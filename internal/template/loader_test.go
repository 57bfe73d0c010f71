package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeTemplate(t *testing.T, dir string, tpl *ContainerTemplate) {
	t.Helper()
	data, err := yaml.Marshal(tpl)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, tpl.ID+".yaml"), data, 0644))
}

func TestLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, validTemplate())

	api := validTemplate()
	api.ID = "api-service-default"
	api.ProjectType = ProjectAPIService
	writeTemplate(t, dir, api)

	loader := NewLoader(dir)
	loaded, err := loader.LoadTemplates()
	require.NoError(t, err)
	assert.Len(t, loaded, 2)

	tpl, err := loader.Get(ProjectAPIService)
	require.NoError(t, err)
	assert.Equal(t, "api-service-default", tpl.ID)
}

func TestLoadTemplates_SkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, validTemplate())

	// Malformed yaml
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("id: [unclosed"), 0644))
	// Parses but fails validation
	require.NoError(t, os.WriteFile(filepath.Join(dir, "incomplete.yaml"), []byte("id: x\nname: y\n"), 0644))
	// Not a template file at all
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# notes"), 0644))

	loader := NewLoader(dir)
	loaded, err := loader.LoadTemplates()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "web-app-default", loaded[0].ID)
}

func TestLoadTemplates_MissingDir(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "does-not-exist"))

	loaded, err := loader.LoadTemplates()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoader_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir)

	tpl := validTemplate()
	require.NoError(t, loader.Save(tpl))

	got, err := loader.Get(ProjectWebApp)
	require.NoError(t, err)
	assert.Equal(t, tpl, got)

	// Persisted to disk and reloadable
	fresh := NewLoader(dir)
	_, err = fresh.LoadTemplates()
	require.NoError(t, err)

	got, err = fresh.Get(ProjectWebApp)
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, got.ID)
	assert.Equal(t, tpl.BaseImage, got.BaseImage)
}

func TestLoader_SaveValidates(t *testing.T) {
	loader := NewLoader(t.TempDir())

	tpl := validTemplate()
	tpl.BaseImage = ""

	err := loader.Save(tpl)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "baseImage", verr.Field)
}

func TestLoader_LastSaveWins(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir)

	first := validTemplate()
	require.NoError(t, loader.Save(first))

	second := validTemplate()
	second.ID = "web-app-v2"
	second.BaseImage = "node:22-alpine"
	require.NoError(t, loader.Save(second))

	got, err := loader.Get(ProjectWebApp)
	require.NoError(t, err)
	assert.Equal(t, "web-app-v2", got.ID)

	// The replaced template's file is gone
	_, err = os.Stat(filepath.Join(dir, "web-app-default.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoader_Delete(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir)

	require.NoError(t, loader.Save(validTemplate()))
	require.NoError(t, loader.Delete(ProjectWebApp))

	_, err := loader.Get(ProjectWebApp)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = os.Stat(filepath.Join(dir, "web-app-default.yaml"))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op
	assert.NoError(t, loader.Delete(ProjectWebApp))
}

func TestLoader_All(t *testing.T) {
	loader := NewLoader(t.TempDir())
	assert.Empty(t, loader.All())

	require.NoError(t, loader.Save(validTemplate()))

	api := validTemplate()
	api.ID = "api-service-default"
	api.ProjectType = ProjectAPIService
	require.NoError(t, loader.Save(api))

	all := loader.All()
	assert.Len(t, all, 2)
}
