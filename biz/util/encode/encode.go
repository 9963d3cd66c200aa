package encode

import (
	"crypto/sha256"
	"encoding/base64"
)

// EncodePassword derives the stored credential digest:
// base64(sha256(password + salt)). A single hash round, no stretching,
// matching the persisted format the rest of the system verifies
// against.
func EncodePassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return base64.StdEncoding.EncodeToString(sum[:])
}
