package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/01moynul/smilespa-golang/internal/models"
)

// computeETag hashes the JSON form of the products. The catalog never
// changes after New, so the tag is computed once.
func computeETag(products []models.Product) (string, error) {
	b, err := json.Marshal(products)
	if err != nil {
		return "", fmt.Errorf("catalog: encode for etag: %w", err)
	}
	return fmt.Sprintf(`W/"%016x"`, xxhash.Sum64(b)), nil
}

// DeriveETag folds extra response inputs (configuration, for instance) into
// a catalog tag, so a change to any of them yields a different tag.
func DeriveETag(base string, extra ...string) string {
	d := xxhash.New()
	_, _ = d.WriteString(base)
	for _, e := range extra {
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(e)
	}
	return fmt.Sprintf(`W/"%016x"`, d.Sum64())
}

// MatchesETag reports whether an If-None-Match header value names tag.
// It accepts "*" and comma-separated lists, comparing weakly.
func MatchesETag(header, tag string) bool {
	if header == "" || tag == "" {
		return false
	}
	want := strings.TrimPrefix(tag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == want {
			return true
		}
	}
	return false
}
