package media

import (
	"crypto/sha1" //nolint:gosec // the upload API mandates SHA-1 signatures
	"encoding/hex"
	"sort"
	"strings"
)

// params that are sent with an upload but never signed
var unsignedParams = map[string]bool{
	"file":          true,
	"api_key":       true,
	"cloud_name":    true,
	"resource_type": true,
	"signature":     true,
}

// signs upload params: sha1 over "k1=v1&k2=v2" (sorted by key) followed by the secret
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))

	for key, value := range params {
		if unsignedParams[key] || value == "" {
			continue
		}

		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
