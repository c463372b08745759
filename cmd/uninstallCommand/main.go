package uninstallCommand

import (
	"fmt"
	"github.com/kaiwahq/kaiwactl/cmd/runCommand"
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	"github.com/kaiwahq/kaiwactl/domain/repository/file"
	"github.com/kaiwahq/kaiwactl/domain/service/configFindService"
	"github.com/kaiwahq/kaiwactl/domain/service/dotfileFind"
	"github.com/kaiwahq/kaiwactl/domain/service/preflight"
	domainRunner "github.com/kaiwahq/kaiwactl/domain/system/runner"
	"github.com/kaiwahq/kaiwactl/domain/system/terminal"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
)

type UninstallCommand struct {
	CobraCommand *cobra.Command
}

func NewUninstallCommand(
	configFindSvc *configFindService.ConfigFindService,
	configRepository config.Repository,
	preflightService *preflight.PreflightService,
	dotfileFindService *dotfileFind.DotfileFindService,
	fileRepository file.Repository,
	runner domainRunner.IRunner,
	terminal terminal.ITerminal,
) *UninstallCommand {
	var yesFlag bool
	var purgeFlag bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the kaiwa package from this machine",
		Long:  `Uninstall the kaiwa package with pip. With --purge, run logs and the configuration dotfile are removed as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := runCommand.ResolveConfig(configFindSvc, configRepository)
			if err != nil {
				return err
			}

			if !yesFlag {
				confirmed, err := terminal.Confirm(fmt.Sprintf("Uninstall %s?", cfg.Package))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			python, err := preflightService.CheckPython(cfg.Python.Minimum)
			if err != nil {
				return err
			}

			_, err = runner.Stream(domainRunner.Command{Name: python.Path, Args: []string{"-m", "pip", "uninstall", "-y", cfg.Package}}, os.Stdout)
			if err != nil {
				return err
			}

			if purgeFlag {
				err = purge(configFindSvc, dotfileFindService, fileRepository)
				if err != nil {
					return err
				}
			}

			fmt.Printf("Uninstalled %s.\n", cfg.Package)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&purgeFlag, "purge", false, "Also remove run logs and the configuration dotfile")

	return &UninstallCommand{
		CobraCommand: cmd,
	}
}

// purge は実行ログディレクトリと設定ドットファイルを削除します。
func purge(
	configFindSvc *configFindService.ConfigFindService,
	dotfileFindService *dotfileFind.DotfileFindService,
	fileRepository file.Repository,
) error {
	if configPath, err := configFindSvc.FindConfig(); err == nil {
		rootDir := configFindSvc.GetProjectRoot(configPath)
		runsDir := filepath.Join(rootDir, ".kaiwa")
		if fileRepository.Exists(runsDir) {
			err = fileRepository.RemoveAll(runsDir)
			if err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", runsDir)
		}
	}

	dotfilePath, found, err := dotfileFindService.Find()
	if err != nil {
		return err
	}
	if found {
		err = fileRepository.Delete(dotfilePath)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", dotfilePath)
	}

	return nil
}
