package main

import (
	"errors"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/kaiwahq/kaiwactl/cmd"
	"github.com/kaiwahq/kaiwactl/domain/system/runner"
	"os"
)

func main() {
	godotenv.Load(".env")

	err := cmd.NewRootCommand().CobraCommand.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode は委譲先コマンドの終了コードをそのままプロセスの終了コードにします。
func exitCode(err error) int {
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}
