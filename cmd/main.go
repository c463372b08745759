package cmd

import (
	"github.com/kaiwahq/kaiwactl/cmd/configCommand"
	"github.com/kaiwahq/kaiwactl/cmd/doctorCommand"
	"github.com/kaiwahq/kaiwactl/cmd/initCommand"
	"github.com/kaiwahq/kaiwactl/cmd/installCommand"
	"github.com/kaiwahq/kaiwactl/cmd/modelsCommand"
	"github.com/kaiwahq/kaiwactl/cmd/runCommand"
	"github.com/kaiwahq/kaiwactl/cmd/uninstallCommand"
	"github.com/kaiwahq/kaiwactl/cmd/upgradeCommand"
	"github.com/kaiwahq/kaiwactl/cmd/versionCommand"
	"github.com/kaiwahq/kaiwactl/cmd/webCommand"
	"github.com/kaiwahq/kaiwactl/domain/service/configFindService"
	"github.com/kaiwahq/kaiwactl/domain/service/dotfileFind"
	"github.com/kaiwahq/kaiwactl/domain/service/install"
	"github.com/kaiwahq/kaiwactl/domain/service/launch"
	"github.com/kaiwahq/kaiwactl/domain/service/portScan"
	"github.com/kaiwahq/kaiwactl/domain/service/preflight"
	"github.com/kaiwahq/kaiwactl/domain/service/upgradeCheck"
	githubClient "github.com/kaiwahq/kaiwactl/infrastructure/external/github"
	configRepo "github.com/kaiwahq/kaiwactl/infrastructure/repository/config"
	dotenvRepo "github.com/kaiwahq/kaiwactl/infrastructure/repository/dotenv"
	fileRepo "github.com/kaiwahq/kaiwactl/infrastructure/repository/file"
	providersRepo "github.com/kaiwahq/kaiwactl/infrastructure/repository/providers"
	ksuidImpl "github.com/kaiwahq/kaiwactl/infrastructure/system/ksuid"
	runnerImpl "github.com/kaiwahq/kaiwactl/infrastructure/system/runner"
	terminalImpl "github.com/kaiwahq/kaiwactl/infrastructure/system/terminal"
	timerImpl "github.com/kaiwahq/kaiwactl/infrastructure/system/timer"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	cmd := &cobra.Command{
		Use:   "kaiwactl",
		Short: "Install, configure and launch the kaiwa chat client",
		Long:  `Kaiwactl manages a kaiwa checkout: it checks the environment, installs dependencies, stores provider settings and launches the terminal and web interfaces.`,
		// エラーはmain側で一度だけ表示し、終了コードに変換します。
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	execRunner := runnerImpl.NewExecRunner()
	term := terminalImpl.NewTerminal()
	githubCl := githubClient.NewGitHubClient()
	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	dotenvRepository := dotenvRepo.NewRepository()
	providersRepository := providersRepo.NewRepository()
	timer := timerImpl.NewTimer()
	ksuidGenerator := ksuidImpl.NewKsuidGenerator()

	configFindSrv := configFindService.NewConfigFindService(fileRepository)
	dotfileFindSrv := dotfileFind.NewDotfileFindService(fileRepository)
	preflightSrv := preflight.NewPreflightService(execRunner)
	installSrv := install.NewInstallService(preflightSrv, execRunner)
	launchSrv := launch.NewLaunchService(execRunner, dotfileFindSrv, dotenvRepository)
	portScanSrv := portScan.NewPortScanService()
	upgradeCheckSrv := upgradeCheck.NewUpgradeCheckService(githubCl, execRunner)

	cmd.AddCommand(initCommand.NewInitCommand(configRepository).CobraCommand)
	cmd.AddCommand(doctorCommand.NewDoctorCommand(
		configFindSrv,
		configRepository,
		preflightSrv,
		dotfileFindSrv,
		execRunner,
	).CobraCommand)
	cmd.AddCommand(installCommand.NewInstallCommand(
		configFindSrv,
		configRepository,
		installSrv,
		timer,
		ksuidGenerator,
	).CobraCommand)
	cmd.AddCommand(configCommand.NewConfigCommand(
		providersRepository,
		configFindSrv,
		dotfileFindSrv,
		dotenvRepository,
		term,
	).CobraCommand)
	cmd.AddCommand(modelsCommand.NewModelsCommand(
		providersRepository,
		configFindSrv,
		dotfileFindSrv,
		dotenvRepository,
	).CobraCommand)
	cmd.AddCommand(runCommand.NewRunCommand(
		configFindSrv,
		configRepository,
		launchSrv,
	).CobraCommand)
	cmd.AddCommand(webCommand.NewWebCommand(
		configFindSrv,
		configRepository,
		launchSrv,
		portScanSrv,
	).CobraCommand)
	cmd.AddCommand(upgradeCommand.NewUpgradeCommand(
		configFindSrv,
		configRepository,
		preflightSrv,
		upgradeCheckSrv,
		installSrv,
		execRunner,
		timer,
		ksuidGenerator,
	).CobraCommand)
	cmd.AddCommand(uninstallCommand.NewUninstallCommand(
		configFindSrv,
		configRepository,
		preflightSrv,
		dotfileFindSrv,
		fileRepository,
		execRunner,
		term,
	).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}
