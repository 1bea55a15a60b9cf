package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFilePath(t *testing.T) {
	start := time.Date(2025, time.March, 4, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, filepath.Join("logs", "prod_2025-03-04_09-30-00.log"), LogFilePath("logs", "prod", start))
	assert.Equal(t, filepath.Join("logs", "default_2025-03-04_09-30-00.log"), LogFilePath("logs", "", start))
}

func TestInitLogger_WritesJSONFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger("test", Options{Dir: dir})
	require.NoError(t, err)

	logger.Debug("debug goes to the file only")
	_ = logger.Sync()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"debug goes to the file only"`)
}
