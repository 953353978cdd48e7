package domain

import (
	"fmt"
	"strings"
)

// Describe builds the producer description for a winery record. It returns
// false when w is nil or none of the descriptive fields are set, in which case
// the caller should omit the producer section entirely.
func Describe(w *Winery) (string, bool) {
	if w == nil {
		return "", false
	}

	var parts []string

	if w.Region != "" {
		place := w.Location
		if place == "" {
			place = w.Region
		}
		parts = append(parts, fmt.Sprintf("Located in %s, %s", place, w.Region))
	}
	if w.History != "" {
		parts = append(parts, w.History)
	}
	if w.Philosophy != "" {
		parts = append(parts, w.Philosophy)
	}
	if w.Hectares != "" {
		parts = append(parts, fmt.Sprintf("The estate spans %s hectares", w.Hectares))
	}
	if w.Grapes != "" {
		parts = append(parts, "Main grape varieties include "+w.Grapes)
	}
	if w.MainWines != "" {
		parts = append(parts, "Notable wines include "+w.MainWines)
	}
	if w.Notes != "" {
		parts = append(parts, w.Notes)
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ". ") + ".", true
}
