package id

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)
var multiDash = regexp.MustCompile(`-+`)

// Slug converts a label such as a fitness goal to lower kebab case.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// PlanID builds YYYY-MM-DD-<goal-slug>-NN where NN is xxhash(seed)%100.
// The same profile on the same day always yields the same id.
func PlanID(dateISO, goal string, seedInput []byte) string {
	h := xxhash.Sum64(seedInput) % 100
	slug := Slug(goal)
	if slug == "" {
		return fmt.Sprintf("%s-%02d", dateISO, h)
	}
	return fmt.Sprintf("%s-%s-%02d", dateISO, slug, h)
}
