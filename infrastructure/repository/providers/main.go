package providers

import (
	_ "embed"
	"encoding/json"
	"github.com/kaiwahq/kaiwactl/domain/model/provider"
	domainProviders "github.com/kaiwahq/kaiwactl/domain/repository/providers"
	"github.com/rotisserie/eris"
	"os"
)

//go:embed providers.json
var defaultRegistry []byte

type repositoryImpl struct{}

func NewRepository() domainProviders.Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Load(overridePath string) (provider.Registry, error) {
	data := defaultRegistry

	if overridePath != "" {
		if _, err := os.Stat(overridePath); err == nil {
			data, err = os.ReadFile(overridePath)
			if err != nil {
				return provider.Registry{}, eris.Wrapf(err, "failed to read %s", overridePath)
			}
		}
	}

	var registry provider.Registry
	err := json.Unmarshal(data, &registry)
	if err != nil {
		return provider.Registry{}, eris.Wrap(err, "failed to parse provider registry")
	}

	return registry, nil
}
