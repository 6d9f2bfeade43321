package docs

import (
	"errors"
	"strings"

	"github.com/inful/mdfp"

	"github.com/zzft/ftsite/internal/frontmatter"
)

const (
	lastmodField = "lastmod"
	lastmodFmt   = "2006-01-02"
)

// computeFingerprint hashes a document the way mdfp verifies it: the
// fingerprint and lastmod fields are excluded and the serialized YAML loses
// its single trailing newline.
func computeFingerprint(fields map[string]any, body []byte) (string, error) {
	if fields == nil {
		return "", errors.New("fields map is nil")
	}

	forHash := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == mdfp.FingerprintField || k == lastmodField {
			continue
		}
		forHash[k] = v
	}

	fm := ""
	if len(forHash) > 0 {
		serialized, err := frontmatter.SerializeYAML(forHash, "\n")
		if err != nil {
			return "", err
		}
		fm = strings.TrimSuffix(string(serialized), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(fm, string(body)), nil
}

// fingerprintState reports whether raw carries a fingerprint and whether it
// still matches the content.
func fingerprintState(doc frontmatter.Document, raw []byte) (present, valid bool) {
	if _, ok := doc.String(mdfp.FingerprintField); !ok {
		return false, false
	}
	ok, err := mdfp.VerifyFingerprint(string(raw))
	return true, err == nil && ok
}
