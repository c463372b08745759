package provider

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func testRegistry() Registry {
	return Registry{
		Providers: []Provider{
			{
				ID:           "openrouter",
				Label:        "OpenRouter",
				KeyPrefix:    "sk-or-",
				DefaultModel: "deepseek/deepseek-chat",
				Models: []Model{
					{Name: "deepseek/deepseek-chat", Alias: "deepseek"},
					{Name: "anthropic/claude-3.5-sonnet", Alias: "sonnet"},
				},
			},
			{
				ID:        "groq",
				Label:     "Groq",
				KeyPrefix: "gsk_",
			},
		},
	}
}

func TestRegistry_Find(t *testing.T) {
	t.Run("IDでプロバイダを取得できること", func(t *testing.T) {
		reg := testRegistry()

		p, ok := reg.Find("groq")
		assert.True(t, ok)
		assert.Equal(t, "Groq", p.Label)

		_, ok = reg.Find("unknown")
		assert.False(t, ok)
	})

	t.Run("IDsが定義順で返ること", func(t *testing.T) {
		reg := testRegistry()
		assert.Equal(t, []string{"openrouter", "groq"}, reg.IDs())
	})
}

func TestProvider_FindModel(t *testing.T) {
	t.Run("正式名とエイリアスのどちらでも解決できること", func(t *testing.T) {
		p, _ := testRegistry().Find("openrouter")

		m, ok := p.FindModel("sonnet")
		assert.True(t, ok)
		assert.Equal(t, "anthropic/claude-3.5-sonnet", m.Name)

		m, ok = p.FindModel("deepseek/deepseek-chat")
		assert.True(t, ok)
		assert.Equal(t, "deepseek", m.Alias)

		_, ok = p.FindModel("gpt-100")
		assert.False(t, ok)
	})
}

func TestProvider_ValidateKey(t *testing.T) {
	p, _ := testRegistry().Find("groq")

	assert.True(t, p.ValidateKey("gsk_abcdef"))
	assert.False(t, p.ValidateKey("sk-or-abcdef"))

	noPrefix := Provider{ID: "local"}
	assert.True(t, noPrefix.ValidateKey("anything"))
}
