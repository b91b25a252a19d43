package generator

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagnert/meta/internal/config"
	"github.com/wagnert/meta/internal/errors"
	"github.com/wagnert/meta/internal/platform"
	"github.com/wagnert/meta/internal/system"
)

const xmlTemplate = `<appserver user="{{ value "appserver.user" }}" group="{{ value "appserver.group" }}">
  <server port="{{ index . "container.http.port" }}" root="{{ value "install.dir" }}"/>
</appserver>
`

// testProps returns the debian properties for /opt/appserver.
func testProps(t *testing.T) config.Properties {
	t.Helper()
	props, err := config.Merge("debian", "/opt/appserver")
	require.NoError(t, err)
	return props
}

func newMockRenderer(t *testing.T, family platform.Family) (*Renderer, *system.MockFS) {
	t.Helper()
	mockFS := system.NewMockFS()
	mockFS.AddFile("/opt/appserver/resources/templates/etc/appserver/appserver.xml.tmpl", []byte(xmlTemplate), 0644)
	return NewRenderer(mockFS, config.DefaultPaths("/opt/appserver"), testProps(t), family), mockFS
}

func TestRender_WritesTarget(t *testing.T) {
	r, mockFS := newMockRenderer(t, platform.FamilyLinux)

	require.NoError(t, r.Render("etc/appserver/appserver.xml", config.DefaultFileMode))

	data, ok := mockFS.GetFile("/opt/appserver/etc/appserver/appserver.xml")
	require.True(t, ok, "target was not written")

	want := `<appserver user="www-data" group="www-data">
  <server port="9080" root="/opt/appserver"/>
</appserver>
`
	assert.Equal(t, want, string(data))
	assert.True(t, mockFS.IsDir("/opt/appserver/etc/appserver"), "parent directory should have been created")
}

func TestRender_AppliesMode(t *testing.T) {
	r, mockFS := newMockRenderer(t, platform.FamilyLinux)

	require.NoError(t, r.Render("etc/appserver/appserver.xml", config.ExecutableMode))

	require.Len(t, mockFS.ChmodCalls, 1)
	assert.Equal(t, system.ChmodCall{Path: "/opt/appserver/etc/appserver/appserver.xml", Mode: 0775}, mockFS.ChmodCalls[0])
}

func TestRender_WindowsSkipsChmod(t *testing.T) {
	r, mockFS := newMockRenderer(t, platform.FamilyWindows)

	require.NoError(t, r.Render("etc/appserver/appserver.xml", config.ExecutableMode))

	assert.Empty(t, mockFS.ChmodCalls)
	_, ok := mockFS.GetFile("/opt/appserver/etc/appserver/appserver.xml")
	assert.True(t, ok, "target should still be written on windows")
}

func TestRender_MissingTemplate(t *testing.T) {
	r, _ := newMockRenderer(t, platform.FamilyLinux)

	err := r.Render("bin/appserver", config.ExecutableMode)
	require.Error(t, err)
	assert.Equal(t, errors.ExitTemplateNotFound, errors.GetExitCode(err))
}

func TestRender_ErrorClasses(t *testing.T) {
	tests := []struct {
		name   string
		inject func(m *system.MockFS)
		want   int
	}{
		{"mkdir", func(m *system.MockFS) { m.MkdirAllErr = fs.ErrPermission }, errors.ExitWriteFailed},
		{"read", func(m *system.MockFS) { m.ReadFileErr = fs.ErrPermission }, errors.ExitRenderFailed},
		{"write", func(m *system.MockFS) { m.WriteFileErr = fs.ErrPermission }, errors.ExitWriteFailed},
		{"chmod", func(m *system.MockFS) { m.ChmodErr = fs.ErrPermission }, errors.ExitPermissionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mockFS := newMockRenderer(t, platform.FamilyLinux)
			tt.inject(mockFS)

			err := r.Render("etc/appserver/appserver.xml", config.DefaultFileMode)
			assert.Equal(t, tt.want, errors.GetExitCode(err), "err: %v", err)
		})
	}
}

func TestExecute_Helpers(t *testing.T) {
	r, _ := newMockRenderer(t, platform.FamilyLinux)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"value", `{{ value "php-fpm.port" }}`, "9100"},
		{"missing value", `[{{ value "no.such.key" }}]`, "[]"},
		{"has", `{{ has "appserver.umask" }} {{ has "nope" }}`, "true false"},
		{"default", `{{ default "8080" (value "no.such.key") }}`, "8080"},
		{"default keeps value", `{{ default "8080" (value "container.http.port") }}`, "9080"},
		{"shellquote", `USER={{ shellquote (value "appserver.user") }}`, "USER=www-data"},
		{"shellquote spaces", `DIR={{ shellquote "/opt/app server" }}`, `DIR='/opt/app server'`},
		{"xmlescape", `{{ xmlescape "a<b & \"c\"" }}`, "a&lt;b &amp; &#34;c&#34;"},
		{"upper", `{{ upper (value "os.family") }}`, "LINUX"},
		{"lower", `{{ lower "DEBIAN" }}`, "debian"},
		{"index", `{{ index . "appserver.admin.email" }}`, "info@appserver.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Execute(tt.name, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestExecute_ParseError(t *testing.T) {
	r, _ := newMockRenderer(t, platform.FamilyLinux)

	_, err := r.Execute("broken", `{{ value "x" `)
	assert.Equal(t, errors.ExitRenderFailed, errors.GetExitCode(err))
}

// writeTemplate stores a template for target below installDir.
func writeTemplate(t *testing.T, installDir, target, text string) {
	t.Helper()
	path := filepath.Join(installDir, "resources", "templates", filepath.FromSlash(target)+config.TemplateSuffix)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
}

func TestRender_RealFS_CreatesDirectoriesAndIsIdempotent(t *testing.T) {
	installDir := t.TempDir()
	writeTemplate(t, installDir, "var/tmp/opcache-blacklist.txt", "{{ value \"install.dir\" }}/webapps/*\n")

	props := config.Base(installDir, config.Defaults())
	r := NewRenderer(system.DefaultFS(), config.DefaultPaths(installDir), props, platform.FamilyLinux)

	target := filepath.Join(installDir, "var", "tmp", "opcache-blacklist.txt")
	_, err := os.Stat(filepath.Dir(target))
	require.True(t, os.IsNotExist(err), "target directory should not exist yet, stat err = %v", err)

	require.NoError(t, r.Render("var/tmp/opcache-blacklist.txt", config.DefaultFileMode))
	first, err := os.ReadFile(target)
	require.NoError(t, err)

	require.NoError(t, r.Render("var/tmp/opcache-blacklist.txt", config.DefaultFileMode))
	second, err := os.ReadFile(target)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, installDir+"/webapps/*\n", string(first))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFileMode, info.Mode().Perm())
}

func TestRender_FollowsAbsoluteSymlink(t *testing.T) {
	installDir := t.TempDir()
	varDir := t.TempDir()
	writeTemplate(t, installDir, "var/tmp/opcache-blacklist.txt", "blacklist\n")
	require.NoError(t, os.Symlink(varDir, filepath.Join(installDir, "var")))

	props := config.Base(installDir, config.Defaults())
	r := NewRenderer(system.DefaultFS(), config.DefaultPaths(installDir), props, platform.FamilyLinux)

	require.NoError(t, r.Render("var/tmp/opcache-blacklist.txt", config.DefaultFileMode))

	got, err := os.ReadFile(filepath.Join(varDir, "tmp", "opcache-blacklist.txt"))
	require.NoError(t, err, "output should land behind the symlink")
	assert.Equal(t, "blacklist\n", string(got))

	_, err = os.Lstat(filepath.Join(installDir, "var", varDir))
	assert.True(t, os.IsNotExist(err), "the link target must not be re-rooted below the install dir")
}
