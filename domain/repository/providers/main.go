//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package providers

import "github.com/kaiwahq/kaiwactl/domain/model/provider"

type Repository interface {
	// Load returns the provider registry. overridePath, when non-empty and
	// pointing at an existing file, takes precedence over the registry
	// bundled with kaiwactl. アプリのチェックアウトに含まれる providers.json を指すのに使います。
	Load(overridePath string) (provider.Registry, error)
}
