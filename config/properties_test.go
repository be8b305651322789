package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Properties(t *testing.T) {
	path := writeFile(t, DefaultFile, `# lambda logger
defaultLogLevel=warn
log.org.test = trace@important:notify-admin
showDateTime: true
dateTimeFormat=yyyy-MM-dd
`)

	props, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, Properties{
		"defaultLogLevel": "warn",
		"log.org.test":    "trace@important:notify-admin",
		"showDateTime":    "true",
		"dateTimeFormat":  "yyyy-MM-dd",
	}, props)
	assert.Equal(t, []string{"dateTimeFormat", "defaultLogLevel", "log.org.test", "showDateTime"}, props.Keys())
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "lambda-logger.yaml", `
defaultLogLevel: warn
showDateTime: true
log:
  org.test: trace@important
  com:
    example: error
`)

	props, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", props["defaultLogLevel"])
	assert.Equal(t, "true", props["showDateTime"])
	assert.Equal(t, "trace@important", props["log.org.test"])
	assert.Equal(t, "error", props["log.com.example"])
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeFile(t, "lambda-logger.toml", `
defaultLogLevel = "warn"
showThreadId = true

[log]
"org.test" = "debug"
`)

	props, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", props["defaultLogLevel"])
	assert.Equal(t, "true", props["showThreadId"])
	assert.Equal(t, "debug", props["log.org.test"])
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.properties"))

	require.Error(t, err)
	assert.True(t, IsNotExist(err))

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "load", cfgErr.Operation)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := writeFile(t, "broken.yaml", "log: [unclosed")

	_, err := LoadFile(path)

	require.Error(t, err)
	assert.False(t, IsNotExist(err))
	assert.Contains(t, err.Error(), "parse")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, YAMLFormat, Format("a.yml"))
	assert.Equal(t, YAMLFormat, Format("a.YAML"))
	assert.Equal(t, TOMLFormat, Format("a.toml"))
	assert.Equal(t, PropertiesFormat, Format("a.properties"))
	assert.Equal(t, PropertiesFormat, Format("noext"))
}
