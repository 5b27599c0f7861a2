package encode

import (
	"crypto/md5"
	"encoding/hex"
)

// CalMd5 calculates the hex-encoded MD5 of bytes. Used for log-safe
// fingerprints, never for secrets at rest.
func CalMd5(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}
