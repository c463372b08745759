package doctorCommand

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	"github.com/kaiwahq/kaiwactl/domain/service/configFindService"
	"github.com/kaiwahq/kaiwactl/domain/service/dotfileFind"
	"github.com/kaiwahq/kaiwactl/domain/service/preflight"
	"github.com/kaiwahq/kaiwactl/domain/system/runner"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

type DoctorCommand struct {
	CobraCommand *cobra.Command
}

func NewDoctorCommand(
	configFindSvc *configFindService.ConfigFindService,
	configRepository config.Repository,
	preflightService *preflight.PreflightService,
	dotfileFindService *dotfileFind.DotfileFindService,
	runner runner.IRunner,
) *DoctorCommand {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check whether this machine can install and run kaiwa",
		Long:  `Check the interpreter, package manager and entry points this machine provides, and report what is missing. Required checks failing makes the command exit nonzero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// kaiwa.yml がない場所でも診断できるように、見つからない場合は既定値を使います。
			cfg := config.Default()
			configStatus := warn()
			configDetail := "not found (defaults in use)"
			if configPath, err := configFindSvc.FindConfig(); err == nil {
				loaded, err := configRepository.Read(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
				configStatus = ok()
				configDetail = configPath
			}

			table := uitable.New()
			table.MaxColWidth = 70
			table.AddRow("CHECK", "STATUS", "DETAIL")

			healthy := true

			python, err := preflightService.CheckPython(cfg.Python.Minimum)
			if err != nil {
				healthy = false
				table.AddRow("python", fail(), err.Error())
			} else {
				table.AddRow("python", ok(), fmt.Sprintf("%s (Python %s)", python.Path, python.Version))

				pip, err := preflightService.CheckPip(python.Path)
				if err != nil {
					healthy = false
					table.AddRow("pip", fail(), err.Error())
				} else {
					table.AddRow("pip", ok(), fmt.Sprintf("pip %s", pip.Version))
				}
			}

			if gitPath, err := runner.LookPath("git"); err != nil {
				table.AddRow("git", warn(), "not found (needed by 'kaiwactl upgrade')")
			} else {
				table.AddRow("git", ok(), gitPath)
			}

			for _, entryPoint := range []string{cfg.EntryPoints.Terminal, cfg.EntryPoints.Web} {
				if path, err := runner.LookPath(entryPoint); err != nil {
					table.AddRow(entryPoint, warn(), "not installed (run 'kaiwactl install')")
				} else {
					table.AddRow(entryPoint, ok(), path)
				}
			}

			table.AddRow("kaiwa.yml", configStatus, configDetail)

			dotfilePath, found, err := dotfileFindService.Find()
			if err != nil {
				return err
			}
			if found {
				table.AddRow(".kaiwa.env", ok(), dotfilePath)
			} else {
				table.AddRow(".kaiwa.env", warn(), "not found (run 'kaiwactl config provider')")
			}

			fmt.Println(table)

			if !healthy {
				return eris.New("this machine is not ready to install kaiwa")
			}
			return nil
		},
	}

	return &DoctorCommand{
		CobraCommand: cmd,
	}
}

func ok() string {
	return color.GreenString("ok")
}

func fail() string {
	return color.RedString("error")
}

func warn() string {
	return color.YellowString("warning")
}
