package config

import (
	"fmt"
	"sort"

	"github.com/wagnert/meta/internal/errors"
)

// Well known property keys.
const (
	KeyInstallDir = "install.dir"
	KeyOSFamily   = "os.family"
	KeyPHPVersion = "appserver.php.version"
	KeyUser       = "appserver.user"
	KeyGroup      = "appserver.group"
)

// DefaultPHPVersion is used when the PHP binary cannot be queried.
const DefaultPHPVersion = "5.5.0"

// Properties is a flat mapping of dotted keys to scalar values.
type Properties map[string]any

var defaultProperties = Properties{
	KeyPHPVersion:                                   DefaultPHPVersion,
	"appserver.version":                             "1.0.0-alpha",
	"appserver.admin.email":                         "info@appserver.io",
	"container.server.worker.acceptMin":             3,
	"container.server.worker.acceptMax":             8,
	"container.http.worker.number":                  64,
	"container.http.host":                           "127.0.0.1",
	"container.http.port":                           9080,
	"container.https.worker.number":                 64,
	"container.https.host":                          "127.0.0.1",
	"container.https.port":                          9443,
	"container.persistence-container.worker.number": 64,
	"container.persistence-container.host":          "127.0.0.1",
	"container.persistence-container.port":          8585,
	"container.memcached.worker.number":             8,
	"container.memcached.host":                      "127.0.0.1",
	"container.memcached.port":                      11210,
	"container.message-queue.worker.number":         8,
	"container.message-queue.host":                  "127.0.0.1",
	"container.message-queue.port":                  8587,
	"appserver.web-socket.host":                     "127.0.0.1",
	"appserver.web-socket.port":                     8589,
	"php-fpm.port":                                  9100,
	"php-fpm.host":                                  "127.0.0.1",
	"appserver.umask":                               "0002",
	KeyUser:                                         "nobody",
	KeyGroup:                                        "nobody",
}

// osOverrides are keyed by OS family (darwin, windows) or Linux distribution.
var osOverrides = map[string]Properties{
	"darwin":  {KeyOSFamily: "darwin", KeyGroup: "staff"},
	"debian":  {KeyOSFamily: "linux", KeyGroup: "www-data", KeyUser: "www-data"},
	"ubuntu":  {KeyOSFamily: "linux", KeyGroup: "www-data", KeyUser: "www-data"},
	"fedora":  {KeyOSFamily: "linux"},
	"redhat":  {KeyOSFamily: "linux"},
	"centOS":  {KeyOSFamily: "linux"},
	"windows": {KeyOSFamily: "windows"},
}

// Defaults returns a copy of the default properties.
func Defaults() Properties {
	return defaultProperties.Clone()
}

// OSOverrides returns a copy of the overrides for a platform id.
func OSOverrides(osID string) (Properties, bool) {
	overrides, ok := osOverrides[osID]
	if !ok {
		return nil, false
	}
	return overrides.Clone(), true
}

// Platforms returns the ids that have an override set, sorted.
func Platforms() []string {
	ids := make([]string, 0, len(osOverrides))
	for id := range osOverrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Base returns install.dir layered with defaults, without OS overrides.
func Base(installDir string, defaults Properties) Properties {
	return Properties{KeyInstallDir: installDir}.Merge(defaults)
}

// Merge combines install.dir, the default properties and the overrides of
// osID.
func Merge(osID, installDir string) (Properties, error) {
	return MergeWith(osID, installDir, Defaults())
}

// MergeWith is Merge with a caller supplied default layer.
func MergeWith(osID, installDir string, defaults Properties) (Properties, error) {
	overrides, ok := osOverrides[osID]
	if !ok {
		return nil, errors.UnknownPlatform(osID)
	}
	return Base(installDir, defaults).Merge(overrides), nil
}

// Merge returns a new mapping holding p overwritten by every layer in order.
func (p Properties) Merge(layers ...Properties) Properties {
	merged := p.Clone()
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// Clone returns a shallow copy of p.
func (p Properties) Clone() Properties {
	c := make(Properties, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Value returns the value for key, or nil when the key is not set.
func (p Properties) Value(key string) any {
	return p[key]
}

// String returns the value for key formatted as a string, or "" when unset.
func (p Properties) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Has reports whether key is set.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Keys returns all keys sorted.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
