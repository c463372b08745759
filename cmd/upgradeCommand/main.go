package upgradeCommand

import (
	"bytes"
	"fmt"
	"github.com/fatih/color"
	"github.com/kaiwahq/kaiwactl/domain/external/github"
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	"github.com/kaiwahq/kaiwactl/domain/service/configFindService"
	"github.com/kaiwahq/kaiwactl/domain/service/install"
	"github.com/kaiwahq/kaiwactl/domain/service/preflight"
	"github.com/kaiwahq/kaiwactl/domain/service/upgradeCheck"
	"github.com/kaiwahq/kaiwactl/domain/system/ksuid"
	"github.com/kaiwahq/kaiwactl/domain/system/runner"
	"github.com/kaiwahq/kaiwactl/domain/system/timer"
	"github.com/kaiwahq/kaiwactl/runlog"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
	"text/template"
)

var releaseDescriptorTemplate *template.Template

func init() {
	releaseDescriptorTemplate = func() *template.Template {
		const releaseTemplateString = `
************************************************************
Version: {{ .TagName }}
Published on: {{ printf "%v" .PublishedAt }}
URL: {{ .HTMLURL }}
Release Notes: {{ .Body }}
************************************************************
`
		return template.Must(template.New("release").Parse(releaseTemplateString))
	}()
}

type UpgradeCommand struct {
	CobraCommand *cobra.Command
}

func NewUpgradeCommand(
	configFindSvc *configFindService.ConfigFindService,
	configRepository config.Repository,
	preflightService *preflight.PreflightService,
	upgradeCheckService *upgradeCheck.UpgradeCheckService,
	installService *install.InstallService,
	runner runner.IRunner,
	timer timer.ITimer,
	ksuidGenerator ksuid.IKsuid,
) *UpgradeCommand {
	var checkFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade kaiwa to the latest release",
		Long:  `Compare the installed version with the latest GitHub release, pull the checkout and reinstall when a newer release exists.`,
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

			python, err := preflightService.CheckPython(cfg.Python.Minimum)
			if err != nil {
				return err
			}

			status, err := upgradeCheckService.Check(python.Path, cfg)
			if err != nil {
				return err
			}

			err = printRelease(status.Release)
			if err != nil {
				return err
			}

			if status.UpToDate && !forceFlag {
				fmt.Printf("%s %s is already up to date.\n", cfg.Package, status.Installed)
				return nil
			}

			if checkFlag {
				fmt.Printf("A new release is available: %s -> %s (run 'kaiwactl upgrade' to apply it)\n", status.Installed, status.Latest)
				return nil
			}

			err = pull(runner, rootDir)
			if err != nil {
				return err
			}

			log, err := runlog.Open(rootDir, ksuidGenerator.New(), timer.Now())
			if err != nil {
				return err
			}
			defer log.Close()

			log.Info("upgrade started",
				zap.String("installed", status.Installed.String()),
				zap.String("latest", status.Latest.String()))

			err = installService.Install(rootDir, cfg, log.Logger)
			if err != nil {
				log.Error("upgrade failed", zap.Error(err))
				return err
			}

			fmt.Println(color.GreenString("Upgraded %s to %s.", cfg.Package, status.Latest))
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Only check for a new release, do not install it")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Reinstall even when already up to date")

	return &UpgradeCommand{
		CobraCommand: cmd,
	}
}

func printRelease(release github.Release) error {
	var buf bytes.Buffer
	if err := releaseDescriptorTemplate.Execute(&buf, release); err != nil {
		return eris.Wrap(err, "executing template")
	}
	fmt.Println(buf.String())
	return nil
}

func pull(r runner.IRunner, rootDir string) error {
	if _, err := r.LookPath("git"); err != nil {
		return eris.New("git is required to upgrade (install it or reinstall kaiwa manually)")
	}

	fmt.Println("Pulling the latest source...")
	_, err := r.Stream(runner.Command{Name: "git", Args: []string{"pull", "--ff-only"}, Dir: rootDir}, os.Stdout)
	if err != nil {
		return eris.Wrap(err, "failed to pull the latest source")
	}

	return nil
}
