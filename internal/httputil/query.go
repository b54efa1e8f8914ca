package httputil

import (
	"net/url"
	"reflect"
	"strings"
)

// GetURLFields returns the fields of filter that are set in the query string.
//
// queryFields only contains the fields that can be passed to a gorm Where
// statement directly. Fields tagged with filterField:"false" are processed
// by explicit logic and only contained in setFields, which lists all fields
// set in the query string.
func GetURLFields(url *url.URL, filter any) (queryFields []any, setFields []string) {
	query := url.Query()

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		if !query.Has(field.Tag.Get("form")) {
			continue
		}

		setFields = append(setFields, field.Name)
		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}

// fields returns the names of all fields of resource whose tag value
// satisfies set. Options after the tag name are ignored.
func fields(resource any, tag string, set func(param string) bool) []any {
	var names []any

	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		param, _, _ := strings.Cut(field.Tag.Get(tag), ",")

		if param != "" && set(param) {
			names = append(names, field.Name)
		}
	}

	return names
}
