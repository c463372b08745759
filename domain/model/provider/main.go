package provider

import "strings"

// Registry は接続先プロバイダの定義一覧です。providers.json から読み込まれます。
type Registry struct {
	Providers []Provider `json:"providers"`
}

type Provider struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	BaseURL      string  `json:"base_url"`
	KeyEnv       string  `json:"key_env"`
	KeyPrefix    string  `json:"key_prefix"`
	DefaultModel string  `json:"default_model"`
	Models       []Model `json:"models"`
}

type Model struct {
	Name  string `json:"name"`
	Alias string `json:"alias"`
}

// Find returns the provider with the given id.
func (r Registry) Find(id string) (Provider, bool) {
	for _, p := range r.Providers {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}

// IDs returns all provider ids in registry order.
func (r Registry) IDs() []string {
	ids := make([]string, len(r.Providers))
	for i, p := range r.Providers {
		ids[i] = p.ID
	}
	return ids
}

// FindModel resolves a model by its full name or its alias.
func (p Provider) FindModel(nameOrAlias string) (Model, bool) {
	for _, m := range p.Models {
		if m.Name == nameOrAlias || m.Alias == nameOrAlias {
			return m, true
		}
	}
	return Model{}, false
}

// ValidateKey reports whether key looks like a key issued by this provider.
// プレフィックスが未定義の場合は常にtrueです。
func (p Provider) ValidateKey(key string) bool {
	if p.KeyPrefix == "" {
		return true
	}
	return strings.HasPrefix(key, p.KeyPrefix)
}
