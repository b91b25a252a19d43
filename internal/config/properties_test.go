package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagnert/meta/internal/errors"
)

func TestDefaults(t *testing.T) {
	defaults := Defaults()

	assert.Len(t, defaults, 27)
	assert.Equal(t, "1.0.0-alpha", defaults.Value("appserver.version"))
	assert.Equal(t, 9080, defaults.Value("container.http.port"))
	assert.Equal(t, "0002", defaults.Value("appserver.umask"))
	assert.Equal(t, "nobody", defaults.String(KeyUser))
	assert.False(t, defaults.Has(KeyInstallDir))

	// Defaults must hand out copies.
	defaults["appserver.user"] = "changed"
	assert.Equal(t, "nobody", Defaults().String(KeyUser))
}

func TestMerge_AllPlatforms(t *testing.T) {
	defaults := Defaults()

	for _, id := range Platforms() {
		t.Run(id, func(t *testing.T) {
			props, err := Merge(id, "/opt/appserver")
			require.NoError(t, err)

			assert.Equal(t, "/opt/appserver", props.Value(KeyInstallDir))

			overrides, ok := OSOverrides(id)
			require.True(t, ok)
			for k := range defaults {
				assert.True(t, props.Has(k), "missing default key %s", k)
			}
			for k, v := range overrides {
				assert.Equal(t, v, props.Value(k), "override %s not applied", k)
			}
		})
	}
}

func TestMerge_Overrides(t *testing.T) {
	tests := []struct {
		osID      string
		wantUser  string
		wantGroup string
		wantOS    string
	}{
		{"debian", "www-data", "www-data", "linux"},
		{"ubuntu", "www-data", "www-data", "linux"},
		{"fedora", "nobody", "nobody", "linux"},
		{"redhat", "nobody", "nobody", "linux"},
		{"centOS", "nobody", "nobody", "linux"},
		{"darwin", "nobody", "staff", "darwin"},
		{"windows", "nobody", "nobody", "windows"},
	}

	for _, tt := range tests {
		t.Run(tt.osID, func(t *testing.T) {
			props, err := Merge(tt.osID, "/srv")
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, props.String(KeyUser))
			assert.Equal(t, tt.wantGroup, props.String(KeyGroup))
			assert.Equal(t, tt.wantOS, props.String(KeyOSFamily))
		})
	}
}

func TestMerge_UnknownPlatform(t *testing.T) {
	for _, id := range []string{"", "arch", "centos", "solaris"} {
		_, err := Merge(id, "/srv")
		require.Error(t, err, "platform %q", id)
		assert.Equal(t, errors.ExitUnknownPlatform, errors.GetExitCode(err))
	}
}

func TestMergeWith_CustomDefaults(t *testing.T) {
	defaults := Defaults()
	defaults[KeyPHPVersion] = "5.6.4"

	props, err := MergeWith("darwin", "/usr/local/appserver", defaults)
	require.NoError(t, err)
	assert.Equal(t, "5.6.4", props.String(KeyPHPVersion))
	assert.Equal(t, "staff", props.String(KeyGroup))
}

func TestMergeWith_DefaultsAboveInstallDir(t *testing.T) {
	defaults := Properties{KeyInstallDir: "/from/defaults"}

	props, err := MergeWith("fedora", "/opt/appserver", defaults)
	require.NoError(t, err)

	// Defaults take precedence over install.dir, matching the merge order.
	assert.Equal(t, "/from/defaults", props.String(KeyInstallDir))
}

func TestBase(t *testing.T) {
	props := Base("/opt/appserver", Defaults())

	assert.Equal(t, "/opt/appserver", props.String(KeyInstallDir))
	assert.Equal(t, "nobody", props.String(KeyUser))
	assert.False(t, props.Has(KeyOSFamily))
}

func TestProperties_Merge(t *testing.T) {
	base := Properties{"a": 1, "b": "two"}
	merged := base.Merge(Properties{"b": "three"}, Properties{"c": true})

	assert.Equal(t, Properties{"a": 1, "b": "three", "c": true}, merged)
	assert.Equal(t, "two", base["b"], "receiver must not be modified")
}

func TestProperties_Accessors(t *testing.T) {
	props := Properties{"port": 9080, "host": "127.0.0.1", "nil": nil}

	assert.Nil(t, props.Value("missing"))
	assert.Equal(t, "9080", props.String("port"))
	assert.Equal(t, "", props.String("missing"))
	assert.Equal(t, "", props.String("nil"))
	assert.Equal(t, []string{"host", "nil", "port"}, props.Keys())
}

func TestPlatforms(t *testing.T) {
	assert.Equal(t, []string{"centOS", "darwin", "debian", "fedora", "redhat", "ubuntu", "windows"}, Platforms())
}

func TestDefaultPaths(t *testing.T) {
	p := DefaultPaths("/opt/appserver")

	assert.Equal(t, "/opt/appserver", p.InstallDir)
	assert.Equal(t, "/etc", p.EtcDir)
	assert.Equal(t, "/opt/appserver/resources/templates", p.TemplatesDir)
	assert.Equal(t, "/opt/appserver/resources/os-specific", p.ResourcesDir)
}
