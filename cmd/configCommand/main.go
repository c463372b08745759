package configCommand

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/kaiwahq/kaiwactl/domain/model/provider"
	"github.com/kaiwahq/kaiwactl/domain/repository/dotenv"
	"github.com/kaiwahq/kaiwactl/domain/repository/providers"
	"github.com/kaiwahq/kaiwactl/domain/service/configFindService"
	"github.com/kaiwahq/kaiwactl/domain/service/dotfileFind"
	"github.com/kaiwahq/kaiwactl/domain/system/terminal"
	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"path/filepath"
)

// ConfigCommand は .kaiwa.env に保存される接続設定を管理します。
// シークレットは表示もdiffも常にマスクされます。
type ConfigCommand struct {
	CobraCommand *cobra.Command
}

func NewConfigCommand(
	providersRepository providers.Repository,
	configFindSvc *configFindService.ConfigFindService,
	dotfileFindService *dotfileFind.DotfileFindService,
	dotenvRepository dotenv.Repository,
	terminal terminal.ITerminal,
) *ConfigCommand {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the provider, model and API key kaiwa uses",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, found, err := dotfileFindService.Find()
			if err != nil {
				return err
			}
			if !found {
				fmt.Println("No configuration yet. Run 'kaiwactl config provider' to create one.")
				return nil
			}

			values, err := dotenvRepository.Read(path)
			if err != nil {
				return err
			}

			fmt.Printf("Configuration in %s:\n\n", path)
			fmt.Print(dotenv.Render(values))
			return nil
		},
	}

	cmd.AddCommand(newProviderCommand(providersRepository, configFindSvc, dotfileFindService, dotenvRepository))
	cmd.AddCommand(newModelCommand(providersRepository, configFindSvc, dotfileFindService, dotenvRepository))
	cmd.AddCommand(newKeyCommand(providersRepository, configFindSvc, dotfileFindService, dotenvRepository, terminal))

	return &ConfigCommand{
		CobraCommand: cmd,
	}
}

func newProviderCommand(
	providersRepository providers.Repository,
	configFindSvc *configFindService.ConfigFindService,
	dotfileFindService *dotfileFind.DotfileFindService,
	dotenvRepository dotenv.Repository,
) *cobra.Command {
	return &cobra.Command{
		Use:   "provider [id]",
		Short: "Select the provider kaiwa talks to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(providersRepository, configFindSvc)
			if err != nil {
				return err
			}

			p, found := registry.Find(args[0])
			if !found {
				return eris.Errorf("unknown provider: %s (available: %v)", args[0], registry.IDs())
			}

			path, values, err := readDotfile(dotfileFindService, dotenvRepository)
			if err != nil {
				return err
			}

			old := dotenv.Render(values)
			values[dotenv.KeyProvider] = p.ID
			// モデルが未設定、または他プロバイダのものを指している場合は既定モデルに切り替えます。
			if _, ok := p.FindModel(values[dotenv.KeyModel]); !ok {
				values[dotenv.KeyModel] = p.DefaultModel
			}

			err = writeAndShowDiff(dotenvRepository, path, values, old)
			if err != nil {
				return err
			}

			if values[p.KeyEnv] == "" {
				fmt.Println(color.YellowString("No API key for %s yet. Set one with 'kaiwactl config key'.", p.Label))
			}
			return nil
		},
	}
}

func newModelCommand(
	providersRepository providers.Repository,
	configFindSvc *configFindService.ConfigFindService,
	dotfileFindService *dotfileFind.DotfileFindService,
	dotenvRepository dotenv.Repository,
) *cobra.Command {
	return &cobra.Command{
		Use:   "model [name or alias]",
		Short: "Select the model used by the current provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, path, values, err := currentProvider(providersRepository, configFindSvc, dotfileFindService, dotenvRepository)
			if err != nil {
				return err
			}

			m, found := p.FindModel(args[0])
			if !found {
				return eris.Errorf("provider %s has no model %s (see 'kaiwactl models --provider %s')", p.ID, args[0], p.ID)
			}

			old := dotenv.Render(values)
			values[dotenv.KeyModel] = m.Name

			return writeAndShowDiff(dotenvRepository, path, values, old)
		},
	}
}

func newKeyCommand(
	providersRepository providers.Repository,
	configFindSvc *configFindService.ConfigFindService,
	dotfileFindService *dotfileFind.DotfileFindService,
	dotenvRepository dotenv.Repository,
	terminal terminal.ITerminal,
) *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Store the API key for the current provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, path, values, err := currentProvider(providersRepository, configFindSvc, dotfileFindService, dotenvRepository)
			if err != nil {
				return err
			}

			key, err := terminal.ReadSecret(fmt.Sprintf("Enter your %s API key: ", p.Label))
			if err != nil {
				return err
			}
			if key == "" {
				return eris.New("no API key entered")
			}

			if !p.ValidateKey(key) {
				fmt.Println(color.YellowString("This does not look like a %s key (expected prefix %q). Saving it anyway.", p.Label, p.KeyPrefix))
			}

			old := dotenv.Render(values)
			values[p.KeyEnv] = key

			return writeAndShowDiff(dotenvRepository, path, values, old)
		},
	}
}

// currentProvider はドットファイルに保存されたプロバイダを解決します。
func currentProvider(
	providersRepository providers.Repository,
	configFindSvc *configFindService.ConfigFindService,
	dotfileFindService *dotfileFind.DotfileFindService,
	dotenvRepository dotenv.Repository,
) (provider.Provider, string, map[string]string, error) {
	registry, err := loadRegistry(providersRepository, configFindSvc)
	if err != nil {
		return provider.Provider{}, "", nil, err
	}

	path, values, err := readDotfile(dotfileFindService, dotenvRepository)
	if err != nil {
		return provider.Provider{}, "", nil, err
	}

	id := values[dotenv.KeyProvider]
	if id == "" {
		return provider.Provider{}, "", nil, eris.New("no provider selected (run 'kaiwactl config provider' first)")
	}

	p, found := registry.Find(id)
	if !found {
		return provider.Provider{}, "", nil, eris.Errorf("provider %s in %s is not in the registry", id, dotenv.FileName)
	}

	return p, path, values, nil
}

func loadRegistry(providersRepository providers.Repository, configFindSvc *configFindService.ConfigFindService) (provider.Registry, error) {
	overridePath := ""
	if configPath, err := configFindSvc.FindConfig(); err == nil {
		overridePath = filepath.Join(configFindSvc.GetProjectRoot(configPath), "providers.json")
	}

	return providersRepository.Load(overridePath)
}

func readDotfile(dotfileFindService *dotfileFind.DotfileFindService, dotenvRepository dotenv.Repository) (string, map[string]string, error) {
	path, _, err := dotfileFindService.Find()
	if err != nil {
		return "", nil, err
	}

	values, err := dotenvRepository.Read(path)
	if err != nil {
		return "", nil, err
	}

	return path, values, nil
}

func writeAndShowDiff(dotenvRepository dotenv.Repository, path string, values map[string]string, old string) error {
	err := dotenvRepository.Write(path, values)
	if err != nil {
		return err
	}

	printDiff(old, dotenv.Render(values))
	fmt.Printf("Saved %s\n", path)
	return nil
}

func printDiff(oldContent, newContent string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldContent, newContent, false)
	fmt.Println(dmp.DiffPrettyText(diffs))
}
