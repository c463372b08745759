package modelsCommand

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/kaiwahq/kaiwactl/domain/model/provider"
	"github.com/kaiwahq/kaiwactl/domain/repository/dotenv"
	"github.com/kaiwahq/kaiwactl/domain/repository/providers"
	"github.com/kaiwahq/kaiwactl/domain/service/configFindService"
	"github.com/kaiwahq/kaiwactl/domain/service/dotfileFind"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"path/filepath"
)

type ModelsCommand struct {
	CobraCommand *cobra.Command
}

func NewModelsCommand(
	providersRepository providers.Repository,
	configFindSvc *configFindService.ConfigFindService,
	dotfileFindService *dotfileFind.DotfileFindService,
	dotenvRepository dotenv.Repository,
) *ModelsCommand {
	var providerFlag string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the providers and models kaiwa can talk to",
		RunE: func(cmd *cobra.Command, args []string) error {
			// チェックアウト内で実行された場合は、同梱の providers.json を優先します。
			overridePath := ""
			if configPath, err := configFindSvc.FindConfig(); err == nil {
				overridePath = filepath.Join(configFindSvc.GetProjectRoot(configPath), "providers.json")
			}

			registry, err := providersRepository.Load(overridePath)
			if err != nil {
				return err
			}

			currentProvider, currentModel := currentSelection(dotfileFindService, dotenvRepository)

			targets := registry.Providers
			if providerFlag != "" {
				p, found := registry.Find(providerFlag)
				if !found {
					return eris.Errorf("unknown provider: %s (available: %v)", providerFlag, registry.IDs())
				}
				targets = []provider.Provider{p}
			}

			table := uitable.New()
			table.MaxColWidth = 50
			table.AddRow("PROVIDER", "MODEL", "ALIAS", "")

			for _, p := range targets {
				for _, m := range p.Models {
					table.AddRow(p.ID, m.Name, m.Alias, note(p, m, currentProvider, currentModel))
				}
			}

			fmt.Println(table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&providerFlag, "provider", "p", "", "Only list models for this provider")

	return &ModelsCommand{
		CobraCommand: cmd,
	}
}

// currentSelection はドットファイルに保存された現在のプロバイダとモデルを返します。
// ドットファイルが読めない場合は選択なしとして扱います。
func currentSelection(dotfileFindService *dotfileFind.DotfileFindService, dotenvRepository dotenv.Repository) (string, string) {
	path, found, err := dotfileFindService.Find()
	if err != nil || !found {
		return "", ""
	}

	values, err := dotenvRepository.Read(path)
	if err != nil {
		return "", ""
	}

	return values[dotenv.KeyProvider], values[dotenv.KeyModel]
}

func note(p provider.Provider, m provider.Model, currentProvider string, currentModel string) string {
	if p.ID == currentProvider && m.Name == currentModel {
		return color.GreenString("selected")
	}
	if m.Name == p.DefaultModel {
		return color.HiBlackString("default")
	}
	return ""
}
