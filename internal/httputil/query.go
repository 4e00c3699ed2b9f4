package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields checks which query parameters are set and which of them can be
// used directly in a gorm query.
//
// queryFields contains all field names that can be used directly in a gorm
// Where statement as arguments to specify the fields filtered on. As gorm uses
// interface{} as type for the Where statement, we cannot use a []string here.
//
// setFields returns a []string with all field names set in the query
// parameters. This is useful to filter for zero values without defining them
// as pointer fields in gorm.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		// filterField is a struct tag that specifies whether the field is
		// used to filter resources directly or is a meta field processed by
		// explicit logic in the handler (e.g. Search or Upcoming).
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if url.Query().Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}

	return queryFields, setFields
}
