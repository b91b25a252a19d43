// Package config provides the setup properties and installation paths for
// appserver-setup.
//
// # Properties
//
// Properties is the flat key/value mapping the templates are rendered
// against. Keys are dotted paths such as "container.http.port". The mapping
// is merged from, lowest to highest precedence:
//
//   - install.dir, the installation directory
//   - the default properties (Defaults)
//   - the overrides of the OS family or Linux distribution (OSOverrides)
//   - an optional operator supplied override file (LoadOverrides)
//
//	props, err := config.Merge("debian", "/opt/appserver")
//	props.String("appserver.user") // "www-data"
//
// Merge rejects platform ids without an override set. The setup run maps
// such distributions to debian before merging.
//
// # Override Files
//
// TOML (.toml) and YAML (.yaml, .yml) files are accepted. Nested tables are
// flattened with dots, so both forms below set the same key:
//
//	"container.http.port" = 8080
//
//	[container.http]
//	port = 8080
//
// # Paths
//
// Paths resolves the template and resource directories below the
// installation directory:
//
//	resources/templates/<target>.tmpl
//	resources/os-specific/<family>/<resource>
package config
