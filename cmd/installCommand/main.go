package installCommand

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/kaiwahq/kaiwactl/banner"
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	"github.com/kaiwahq/kaiwactl/domain/service/configFindService"
	"github.com/kaiwahq/kaiwactl/domain/service/install"
	"github.com/kaiwahq/kaiwactl/domain/service/launch"
	"github.com/kaiwahq/kaiwactl/domain/system/ksuid"
	"github.com/kaiwahq/kaiwactl/domain/system/timer"
	"github.com/kaiwahq/kaiwactl/runlog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type InstallCommand struct {
	CobraCommand *cobra.Command
}

func NewInstallCommand(
	configFindSvc *configFindService.ConfigFindService,
	configRepository config.Repository,
	installService *install.InstallService,
	timer timer.ITimer,
	ksuidGenerator ksuid.IKsuid,
) *InstallCommand {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install kaiwa and its dependencies",
		Long:  `Install the dependencies listed in the requirements manifest (or a fallback set when the manifest is absent), then install kaiwa itself in development mode.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := configFindSvc.FindConfig()
			if err != nil {
				return err
			}

			cfg, err := configRepository.Read(configPath)
			if err != nil {
				return err
			}

			rootDir := configFindSvc.GetProjectRoot(configPath)

			log, err := runlog.Open(rootDir, ksuidGenerator.New(), timer.Now())
			if err != nil {
				return err
			}
			defer log.Close()

			err = installService.Install(rootDir, cfg, log.Logger)
			if err != nil {
				log.Error("install failed", zap.Error(err))
				return err
			}

			text, err := banner.BuildBanner(banner.BannerParam{
				Package:  cfg.Package,
				Terminal: cfg.EntryPoints.Terminal,
				Web:      cfg.EntryPoints.Web,
				Host:     launch.DefaultHost,
				Port:     launch.DefaultPort,
			})
			if err != nil {
				return err
			}

			fmt.Print(color.GreenString(text))
			return nil
		},
	}

	return &InstallCommand{
		CobraCommand: cmd,
	}
}
