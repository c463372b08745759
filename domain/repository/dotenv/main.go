//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package dotenv

import (
	"fmt"
	"sort"
	"strings"
)

// FileName は設定ドットファイルの名前です。カレントディレクトリ、次にホームディレクトリの順で探します。
const FileName = ".kaiwa.env"

const (
	KeyProvider = "KAIWA_PROVIDER"
	KeyModel    = "KAIWA_MODEL"
)

type Repository interface {
	// Read parses the dotfile at path. A missing file yields an empty map.
	Read(path string) (map[string]string, error)
	// Write persists values to path, creating the file when absent.
	Write(path string, values map[string]string) error
}

// IsSecretKey reports whether the value of an env key must never be printed
// in full.
func IsSecretKey(key string) bool {
	return strings.HasSuffix(key, "_API_KEY")
}

// MaskSecret keeps only a short tail of a secret visible, enough to tell
// keys apart.
func MaskSecret(value string) string {
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}

// Render formats values as sorted KEY=VALUE lines. Secrets are masked, so
// the output is safe to print and diff.
func Render(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		v := values[k]
		if IsSecretKey(k) {
			v = MaskSecret(v)
		}
		fmt.Fprintf(&b, "%s=%s\n", k, v)
	}
	return b.String()
}
