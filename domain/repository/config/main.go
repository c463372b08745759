package config

// Config は kaiwa.yml の内容を表します。kaiwa.yml はアプリのチェックアウト直下に置かれ、
// プロジェクトルートの目印を兼ねます。
type Config struct {
	Package      string      `yaml:"package"`
	Repository   string      `yaml:"repository"`
	Requirements string      `yaml:"requirements"`
	EntryPoints  EntryPoints `yaml:"entry-points"`
	Python       Python      `yaml:"python"`
}

type EntryPoints struct {
	Terminal string `yaml:"terminal"`
	Web      string `yaml:"web"`
}

type Python struct {
	Minimum string `yaml:"minimum"`
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}

// Default returns the configuration for a stock kaiwa checkout. It is what
// `kaiwactl init` writes and what launch commands fall back to when no
// kaiwa.yml is found.
func Default() *Config {
	return &Config{
		Package:      "kaiwa",
		Repository:   "kaiwahq/kaiwa",
		Requirements: "requirements.txt",
		EntryPoints: EntryPoints{
			Terminal: "kaiwa",
			Web:      "kaiwa-web",
		},
		Python: Python{
			Minimum: "3.8",
		},
	}
}
