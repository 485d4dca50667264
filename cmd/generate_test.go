package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/site2c/site2c/internal/config"
)

func resetFlags() {
	flagConfig = config.DefaultFile
	flagSource = ""
	flagOutput = ""
	flagTarget = ""
	flagAuthor = ""
	flagExclude = nil
	flagLogLevel = ""
}

func writeSite(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestRunGenerateFromFlags(t *testing.T) {
	defer resetFlags()
	tmp := t.TempDir()

	site := filepath.Join(tmp, "dist")
	writeSite(t, site, map[string]string{
		"index.html":   "<html></html>",
		"css/site.css": "body{}",
	})

	flagConfig = filepath.Join(tmp, "site2c.yaml") // does not exist, flags only
	flagSource = site
	flagOutput = filepath.Join(tmp, "lib")
	flagTarget = config.TargetEspidf
	flagAuthor = "Test Author"

	require.NoError(t, runGenerate())

	for _, f := range []string{"website.h", "website.c"} {
		_, err := os.Stat(filepath.Join(tmp, "lib", f))
		assert.NoError(t, err, "expected %s", f)
	}
}

func TestRunGenerateFromConfigFile(t *testing.T) {
	defer resetFlags()
	tmp := t.TempDir()

	site := filepath.Join(tmp, "dist")
	writeSite(t, site, map[string]string{
		"index.html": "<html></html>",
	})

	cfgPath := filepath.Join(tmp, "site2c.yaml")
	cfgContent := "source: " + site + "\noutput: " + filepath.Join(tmp, "out") + "\ntarget: arduino\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0644))

	flagConfig = cfgPath

	require.NoError(t, runGenerate())

	for _, f := range []string{"website.h", "website.cpp"} {
		_, err := os.Stat(filepath.Join(tmp, "out", f))
		assert.NoError(t, err, "expected %s", f)
	}
}

func TestRunGenerateMissingSource(t *testing.T) {
	defer resetFlags()
	tmp := t.TempDir()

	flagConfig = filepath.Join(tmp, "site2c.yaml")
	flagSource = filepath.Join(tmp, "does-not-exist")
	flagOutput = filepath.Join(tmp, "lib")

	err := runGenerate()
	assert.Error(t, err)

	// Nothing beyond the output directory may exist after a precondition
	// failure. Here the source check runs first, so not even that.
	_, statErr := os.Stat(filepath.Join(tmp, "lib"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunGenerateSourceIsFile(t *testing.T) {
	defer resetFlags()
	tmp := t.TempDir()

	file := filepath.Join(tmp, "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	flagConfig = filepath.Join(tmp, "site2c.yaml")
	flagSource = file
	flagOutput = filepath.Join(tmp, "lib")

	err := runGenerate()
	assert.ErrorContains(t, err, "not a directory")
}

func TestRunGenerateInvalidTarget(t *testing.T) {
	defer resetFlags()
	tmp := t.TempDir()

	flagConfig = filepath.Join(tmp, "site2c.yaml")
	flagSource = tmp
	flagTarget = "zephyr"

	err := runGenerate()
	assert.ErrorContains(t, err, "invalid target")
}
