package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/bomtool/internal/domain/entity"
)

// ValidateRequiredColumns checks the importer column list: at least one
// column, unique non-empty names, known types, and no synonym shared
// between columns.
func ValidateRequiredColumns(field string, columns []entity.RequiredColumn) []string {
	if len(columns) == 0 {
		return []string{field + " must list at least one column"}
	}

	var errs []string
	names := make(map[string]bool, len(columns))
	owner := make(map[string]string)
	for i, col := range columns {
		name := strings.TrimSpace(col.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("%s[%d].name cannot be empty", field, i))
			continue
		}
		if names[strings.ToLower(name)] {
			errs = append(errs, fmt.Sprintf("%s: duplicate column %s", field, name))
			continue
		}
		names[strings.ToLower(name)] = true

		switch col.Type {
		case entity.ColumnString, entity.ColumnU32:
		default:
			errs = append(errs, fmt.Sprintf("%s[%d].type must be one of: str, u32 (got: %s)", field, i, col.Type))
		}

		for _, alias := range append([]string{name}, col.Synonyms...) {
			key := strings.ToLower(strings.TrimSpace(alias))
			if key == "" {
				errs = append(errs, fmt.Sprintf("%s[%d].synonyms cannot contain empty names", field, i))
				continue
			}
			if prev, taken := owner[key]; taken && prev != name {
				errs = append(errs, fmt.Sprintf("%s: %q is used by both %s and %s", field, alias, prev, name))
				continue
			}
			owner[key] = name
		}
	}
	return errs
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
