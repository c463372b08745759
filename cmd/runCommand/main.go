package runCommand

import (
	"fmt"
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	"github.com/kaiwahq/kaiwactl/domain/service/configFindService"
	"github.com/kaiwahq/kaiwactl/domain/service/launch"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
)

type RunCommand struct {
	CobraCommand *cobra.Command
}

func NewRunCommand(
	configFindSvc *configFindService.ConfigFindService,
	configRepository config.Repository,
	launchService *launch.LaunchService,
) *RunCommand {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Launch the kaiwa terminal interface",
		Long:  `Launch the installed terminal entry point. Values from .kaiwa.env are passed to it as environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ResolveConfig(configFindSvc, configRepository)
			if err != nil {
				return err
			}

			// Ctrl+Cは子プロセス側で処理されるため、親はシグナルを受け流します。
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)
			defer signal.Stop(sigCh)

			err = launchService.Terminal(cfg)

			select {
			case <-sigCh:
				fmt.Println("\nShutting down.")
				return nil
			default:
			}

			return err
		},
	}

	return &RunCommand{
		CobraCommand: cmd,
	}
}

// ResolveConfig は kaiwa.yml を読み込みます。見つからない場合は既定値を使います。
// インストール済みのエントリポイントはチェックアウトの外からでも起動できるためです。
func ResolveConfig(configFindSvc *configFindService.ConfigFindService, configRepository config.Repository) (*config.Config, error) {
	configPath, err := configFindSvc.FindConfig()
	if err != nil {
		return config.Default(), nil
	}

	return configRepository.Read(configPath)
}
