package webCommand

import (
	"fmt"
	"github.com/kaiwahq/kaiwactl/cmd/runCommand"
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	"github.com/kaiwahq/kaiwactl/domain/service/configFindService"
	"github.com/kaiwahq/kaiwactl/domain/service/launch"
	"github.com/kaiwahq/kaiwactl/domain/service/portScan"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"strings"
)

// ポートスキャンの上限です。既定ポートが使用中の場合、ここまでの範囲で空きを探します。
const maxPort = 9000

type WebCommand struct {
	CobraCommand *cobra.Command
}

func NewWebCommand(
	configFindSvc *configFindService.ConfigFindService,
	configRepository config.Repository,
	launchService *launch.LaunchService,
	portScanService *portScan.PortScanService,
) *WebCommand {
	var hostFlag string
	var portFlag int
	var shareFlag bool

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Launch the kaiwa web interface",
		Long:  `Launch the installed web entry point. When the default port is taken, the next free port up to 9000 is used instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := runCommand.ResolveConfig(configFindSvc, configRepository)
			if err != nil {
				return err
			}

			// 明示的にポートが指定された場合はスキャンせず、そのポートをそのまま使います。
			port := portFlag
			if port == launch.DefaultPort {
				port = portScanService.FindAvailable(launch.DefaultPort, maxPort)
				if port != launch.DefaultPort {
					fmt.Printf("Port %d in use, using %d\n", launch.DefaultPort, port)
				}
			}

			line := strings.Repeat("=", 50)
			fmt.Println(line)
			fmt.Printf("%s web interface\n", cfg.Package)
			fmt.Printf("http://%s:%d\n", hostFlag, port)
			fmt.Println(line)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)
			defer signal.Stop(sigCh)

			err = launchService.Web(cfg, launch.WebOption{Host: hostFlag, Port: port, Share: shareFlag})

			select {
			case <-sigCh:
				fmt.Println("\nServer shutdown requested.")
				return nil
			default:
			}

			return err
		},
	}

	cmd.Flags().StringVar(&hostFlag, "host", launch.DefaultHost, "Host to bind to (use 0.0.0.0 for external access)")
	cmd.Flags().IntVar(&portFlag, "port", launch.DefaultPort, "Port to run the server on")
	cmd.Flags().BoolVar(&shareFlag, "share", false, "Create a public share link")

	return &WebCommand{
		CobraCommand: cmd,
	}
}
