package install

import (
	"fmt"
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	"github.com/kaiwahq/kaiwactl/domain/service/preflight"
	"github.com/kaiwahq/kaiwactl/domain/system/runner"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"os"
	"path/filepath"
)

// FallbackPackages は依存マニフェストが存在しない場合にインストールされるパッケージです。
// kaiwa の setup.py の install_requires と同じ内容を維持してください。
var FallbackPackages = []string{
	"openai",
	"rich",
	"python-dotenv",
	"pwinput",
	"pyperclip",
	"colorama",
	"prompt_toolkit",
	"gradio>=4.0.0",
}

type InstallService struct {
	preflightService *preflight.PreflightService
	runner           runner.IRunner
}

func NewInstallService(
	preflightService *preflight.PreflightService,
	runner runner.IRunner,
) *InstallService {
	return &InstallService{
		preflightService: preflightService,
		runner:           runner,
	}
}

// Install は環境チェックの後、依存パッケージと本体を開発モードでインストールします。
// 環境チェックに失敗した場合はインストールステップを一切実行せずにエラーを返します。
func (s *InstallService) Install(rootDir string, cfg *config.Config, logger *zap.Logger) error {
	python, err := s.preflightService.CheckPython(cfg.Python.Minimum)
	if err != nil {
		return err
	}
	fmt.Printf("Using %s (Python %s)\n", python.Path, python.Version)
	logger.Info("python detected", zap.String("path", python.Path), zap.String("version", python.Version.String()))

	pip, err := s.preflightService.CheckPip(python.Path)
	if err != nil {
		return err
	}
	logger.Info("pip detected", zap.String("version", pip.Version.String()))

	fmt.Println("Upgrading pip...")
	err = s.stream(python.Path, []string{"-m", "pip", "install", "--upgrade", "pip"}, rootDir, logger)
	if err != nil {
		return eris.Wrap(err, "failed to upgrade pip")
	}

	if exists(filepath.Join(rootDir, cfg.Requirements)) {
		fmt.Printf("Installing dependencies from %s...\n", cfg.Requirements)
		err = s.stream(python.Path, []string{"-m", "pip", "install", "-r", cfg.Requirements}, rootDir, logger)
	} else {
		fmt.Printf("%s not found, installing the default package set...\n", cfg.Requirements)
		args := append([]string{"-m", "pip", "install"}, FallbackPackages...)
		err = s.stream(python.Path, args, rootDir, logger)
	}
	if err != nil {
		return eris.Wrap(err, "failed to install dependencies")
	}

	fmt.Printf("Installing %s in development mode...\n", cfg.Package)
	err = s.stream(python.Path, []string{"-m", "pip", "install", "-e", "."}, rootDir, logger)
	if err != nil {
		return eris.Wrapf(err, "failed to install %s", cfg.Package)
	}

	logger.Info("install finished", zap.String("package", cfg.Package))
	return nil
}

func (s *InstallService) stream(name string, args []string, dir string, logger *zap.Logger) error {
	logger.Info("running command", zap.String("name", name), zap.Strings("args", args))

	result, err := s.runner.Stream(runner.Command{Name: name, Args: args, Dir: dir}, os.Stdout)
	if err != nil {
		logger.Error("command failed", zap.Int("exitCode", result.ExitCode))
		return err
	}

	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
