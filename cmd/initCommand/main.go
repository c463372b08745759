package initCommand

import (
	"fmt"
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configRepository config.Repository) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Mark the current directory as a kaiwa checkout",
		Long:  `Mark the current directory as a kaiwa checkout by creating a kaiwa.yml configuration file with default settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentDir, err := os.Getwd()
			if err != nil {
				return err
			}

			configPath := filepath.Join(currentDir, "kaiwa.yml")
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("kaiwa.yml already exists in the current directory")
			}

			err = configRepository.Write(configPath, config.Default())
			if err != nil {
				return err
			}

			fmt.Println("Created kaiwa.yml in the current directory.")
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}
