package preflight

import (
	"github.com/blang/semver/v4"
	"github.com/kaiwahq/kaiwactl/domain/system/runner"
	"github.com/rotisserie/eris"
	"runtime"
	"strings"
)

// Tool は検出済みの外部ツールです。
type Tool struct {
	Path    string
	Version semver.Version
}

var (
	ErrPythonMissing = eris.New("python 3 is not installed or not on PATH (install it from https://www.python.org/downloads/)")
	ErrPipMissing    = eris.New("pip is not available (install it with 'python -m ensurepip --upgrade')")
)

// PreflightService はインストールに先立つ環境チェックを行います。
// チェックに失敗した場合、インストールステップは一切実行されません。
type PreflightService struct {
	runner runner.IRunner
}

func NewPreflightService(r runner.IRunner) *PreflightService {
	return &PreflightService{
		runner: r,
	}
}

func pythonCandidates() []string {
	// Windowsではpython.orgのインストーラが python のみを配置します。
	if runtime.GOOS == "windows" {
		return []string{"python", "python3"}
	}
	return []string{"python3", "python"}
}

// CheckPython はPythonインタプリタを探し、バージョンが minimum 以上であることを確認します。
func (s *PreflightService) CheckPython(minimum string) (Tool, error) {
	min, err := semver.ParseTolerant(minimum)
	if err != nil {
		return Tool{}, eris.Wrapf(err, "invalid minimum python version: %s", minimum)
	}

	var path string
	for _, name := range pythonCandidates() {
		p, err := s.runner.LookPath(name)
		if err == nil {
			path = p
			break
		}
	}
	if path == "" {
		return Tool{}, ErrPythonMissing
	}

	result, err := s.runner.Capture(runner.Command{Name: path, Args: []string{"--version"}})
	if err != nil {
		return Tool{}, eris.Wrap(err, "failed to run python --version")
	}

	version, err := parseVersionOutput(result.Output)
	if err != nil {
		return Tool{}, err
	}

	if version.LT(min) {
		return Tool{}, eris.Errorf("python %s is too old (%s or newer is required)", version, min)
	}

	return Tool{Path: path, Version: version}, nil
}

// CheckPip は python -m pip が使えることを確認します。
func (s *PreflightService) CheckPip(pythonPath string) (Tool, error) {
	result, err := s.runner.Capture(runner.Command{Name: pythonPath, Args: []string{"-m", "pip", "--version"}})
	if err != nil {
		return Tool{}, ErrPipMissing
	}

	version, err := parseVersionOutput(result.Output)
	if err != nil {
		return Tool{}, err
	}

	return Tool{Path: pythonPath, Version: version}, nil
}

// parseVersionOutput は "Python 3.11.2" や "pip 24.0 from ..." の2番目のフィールドをパースします。
func parseVersionOutput(output string) (semver.Version, error) {
	fields := strings.Fields(output)
	if len(fields) < 2 {
		return semver.Version{}, eris.Errorf("unexpected version output: %q", output)
	}

	version, err := semver.ParseTolerant(fields[1])
	if err != nil {
		return semver.Version{}, eris.Wrapf(err, "unexpected version output: %q", output)
	}

	return version, nil
}
