// Package generator renders the application server templates.
//
// A target such as "etc/appserver/appserver.xml" is rendered from
// <install.dir>/resources/templates/etc/appserver/appserver.xml.tmpl and
// written to <install.dir>/etc/appserver/appserver.xml. Missing parent
// directories are created with mode 0775, an existing target is overwritten
// and the requested mode is applied afterwards (never on Windows).
//
// # Template Syntax
//
// Templates are Go text/templates executed with the merged properties as
// data. Values can be read with the value helper or by indexing the data:
//
//	<user>{{ value "appserver.user" }}</user>
//	<port>{{ index . "container.http.port" }}</port>
//
// # Helper Functions
//
//	value KEY           property value, "" when unset
//	has KEY             whether the property is set
//	default DEF VALUE   DEF when VALUE is empty
//	shellquote VALUE    POSIX shell quoted value
//	xmlescape VALUE     XML escaped value
//	upper, lower        case conversion
//
// Rendering is a pure function of template text and properties, so running
// the setup twice produces byte identical files.
package generator
