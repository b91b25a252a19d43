package config

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagnert/meta/internal/errors"
	"github.com/wagnert/meta/internal/system"
)

func TestLoadOverrides_TOML(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/cfg/setup.toml", []byte(`
"container.http.port" = 8080
"appserver.user" = "appserver"

[container.https]
port = 8443
host = "0.0.0.0"
`), 0644)

	props, err := LoadOverrides(mockFS, "/cfg/setup.toml")
	require.NoError(t, err)

	assert.Equal(t, Properties{
		"container.http.port":  8080,
		"appserver.user":       "appserver",
		"container.https.port": 8443,
		"container.https.host": "0.0.0.0",
	}, props)
}

func TestLoadOverrides_YAML(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/cfg/setup.yml", []byte(`
container.http.port: 8080
appserver:
  umask: "0022"
  group: www
`), 0644)

	props, err := LoadOverrides(mockFS, "/cfg/setup.yml")
	require.NoError(t, err)

	assert.Equal(t, 8080, props.Value("container.http.port"))
	assert.Equal(t, "0022", props.Value("appserver.umask"))
	assert.Equal(t, "www", props.Value("appserver.group"))
}

func TestLoadOverrides_Errors(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/cfg/setup.ini", []byte("a=b"), 0644)
	mockFS.AddFile("/cfg/broken.toml", []byte("= nope"), 0644)
	mockFS.AddFile("/cfg/list.yaml", []byte("hosts:\n  - a\n  - b\n"), 0644)

	tests := []struct {
		name string
		path string
	}{
		{"missing file", "/cfg/missing.toml"},
		{"unsupported extension", "/cfg/setup.ini"},
		{"invalid toml", "/cfg/broken.toml"},
		{"list value", "/cfg/list.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOverrides(mockFS, tt.path)
			require.Error(t, err)
			assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
		})
	}
}

func TestQueryPHPVersion(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("/opt/appserver/bin/php -r", []byte("5.6.4\n"), nil)

	got := QueryPHPVersion(context.Background(), exec, "/opt/appserver/bin/php")
	assert.Equal(t, "5.6.4", got)

	cmd, ok := exec.LastCommand()
	require.True(t, ok)
	assert.Equal(t, []string{"-r", "echo PHP_VERSION;"}, cmd.Args)
}

func TestQueryPHPVersion_Fallback(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("php", nil, fmt.Errorf("executable file not found"))
	assert.Equal(t, DefaultPHPVersion, QueryPHPVersion(context.Background(), exec, ""))

	empty := system.NewMockExecutor()
	assert.Equal(t, DefaultPHPVersion, QueryPHPVersion(context.Background(), empty, "php"))
}
