package upgradeCheck

import (
	"github.com/blang/semver/v4"
	"github.com/kaiwahq/kaiwactl/domain/external/github"
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	"github.com/kaiwahq/kaiwactl/domain/system/runner"
	"github.com/rotisserie/eris"
	"strings"
)

// Status はインストール済みバージョンと最新リリースの比較結果です。
type Status struct {
	Installed semver.Version
	Latest    semver.Version
	Release   github.Release
	UpToDate  bool
}

type UpgradeCheckService struct {
	githubClient github.Client
	runner       runner.IRunner
}

func NewUpgradeCheckService(
	githubClient github.Client,
	runner runner.IRunner,
) *UpgradeCheckService {
	return &UpgradeCheckService{
		githubClient: githubClient,
		runner:       runner,
	}
}

// InstalledVersion は pip show の出力からインストール済みのバージョンを取得します。
func (s *UpgradeCheckService) InstalledVersion(pythonPath string, pkg string) (semver.Version, error) {
	result, err := s.runner.Capture(runner.Command{Name: pythonPath, Args: []string{"-m", "pip", "show", pkg}})
	if err != nil {
		return semver.Version{}, eris.Errorf("%s is not installed (run 'kaiwactl install' first)", pkg)
	}

	for _, line := range strings.Split(result.Output, "\n") {
		if strings.HasPrefix(line, "Version:") {
			return semver.ParseTolerant(strings.TrimSpace(strings.TrimPrefix(line, "Version:")))
		}
	}

	return semver.Version{}, eris.Errorf("could not determine the installed version of %s", pkg)
}

// Check はインストール済みバージョンとGitHub上の最新リリースを比較します。
func (s *UpgradeCheckService) Check(pythonPath string, cfg *config.Config) (Status, error) {
	installed, err := s.InstalledVersion(pythonPath, cfg.Package)
	if err != nil {
		return Status{}, err
	}

	owner, repo, err := splitRepository(cfg.Repository)
	if err != nil {
		return Status{}, err
	}

	release, err := s.githubClient.LatestRelease(owner, repo)
	if err != nil {
		return Status{}, eris.Wrap(err, "failed to fetch the latest release")
	}

	latest, err := semver.ParseTolerant(release.TagName)
	if err != nil {
		return Status{}, eris.Wrapf(err, "unexpected release tag: %s", release.TagName)
	}

	return Status{
		Installed: installed,
		Latest:    latest,
		Release:   release,
		UpToDate:  installed.GTE(latest),
	}, nil
}

func splitRepository(repository string) (string, string, error) {
	parts := strings.SplitN(repository, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", eris.Errorf("invalid repository: %s (expected owner/name)", repository)
	}
	return parts[0], parts[1], nil
}
