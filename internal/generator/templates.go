package generator

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"
	"text/template"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/wagnert/meta/internal/config"
)

// funcMap returns the helper functions available to templates.
func funcMap(props config.Properties) template.FuncMap {
	return template.FuncMap{
		"value": func(key string) any {
			v, ok := props[key]
			if !ok || v == nil {
				return ""
			}
			return v
		},
		"has":        props.Has,
		"default":    defaultValue,
		"shellquote": shellQuote,
		"xmlescape":  xmlEscape,
		"upper":      func(v any) string { return strings.ToUpper(fmt.Sprint(v)) },
		"lower":      func(v any) string { return strings.ToLower(fmt.Sprint(v)) },
	}
}

// defaultValue returns def when v is nil or the zero value of its type.
func defaultValue(def, v any) any {
	if v == nil {
		return def
	}
	if rv := reflect.ValueOf(v); rv.IsZero() {
		return def
	}
	return v
}

// shellQuote quotes a value for safe inclusion in a POSIX shell script.
func shellQuote(v any) string {
	return shellquote.Join(fmt.Sprint(v))
}

// xmlEscape escapes a value for use in XML text and attribute values.
func xmlEscape(v any) (string, error) {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(fmt.Sprint(v))); err != nil {
		return "", err
	}
	return b.String(), nil
}
