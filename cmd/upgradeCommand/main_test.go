package upgradeCommand

import (
	"github.com/kaiwahq/kaiwactl/domain/external/github"
	"github.com/kaiwahq/kaiwactl/domain/service/configFindService"
	"github.com/kaiwahq/kaiwactl/domain/service/install"
	"github.com/kaiwahq/kaiwactl/domain/service/preflight"
	"github.com/kaiwahq/kaiwactl/domain/service/upgradeCheck"
	"github.com/kaiwahq/kaiwactl/domain/system/ksuid"
	"github.com/kaiwahq/kaiwactl/domain/system/runner"
	"github.com/kaiwahq/kaiwactl/domain/system/timer"
	configRepoImpl "github.com/kaiwahq/kaiwactl/infrastructure/repository/config"
	fileRepoImpl "github.com/kaiwahq/kaiwactl/infrastructure/repository/file"
	"github.com/kaiwahq/kaiwactl/testUtil"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"path/filepath"
	"testing"
)

const pipShowOutput = `Name: kaiwa
Version: 2.0.0
Summary: Chat client for hosted LLM providers
`

func TestUpgradeCommand(t *testing.T) {
	type Mocks struct {
		Runner         *runner.MockIRunner
		GithubClient   *github.MockClient
		Timer          *timer.MockITimer
		KsuidGenerator *ksuid.MockIKsuid
	}

	factory := func(
		mockCtrl *gomock.Controller,
		customizeMocks func(mocks Mocks),
	) *UpgradeCommand {
		mockRunner := runner.NewMockIRunner(mockCtrl)
		mockGithubClient := github.NewMockClient(mockCtrl)
		mockTimer := timer.NewMockITimer(mockCtrl)
		mockKsuidGenerator := ksuid.NewMockIKsuid(mockCtrl)

		fileRepository := fileRepoImpl.NewFileRepository()
		configRepository := configRepoImpl.NewConfigRepository()
		configFindSvc := configFindService.NewConfigFindService(fileRepository)
		preflightSvc := preflight.NewPreflightService(mockRunner)
		upgradeCheckSvc := upgradeCheck.NewUpgradeCheckService(mockGithubClient, mockRunner)
		installSvc := install.NewInstallService(preflightSvc, mockRunner)

		customizeMocks(Mocks{
			Runner:         mockRunner,
			GithubClient:   mockGithubClient,
			Timer:          mockTimer,
			KsuidGenerator: mockKsuidGenerator,
		})

		return NewUpgradeCommand(
			configFindSvc,
			configRepository,
			preflightSvc,
			upgradeCheckSvc,
			installSvc,
			mockRunner,
			mockTimer,
			mockKsuidGenerator,
		)
	}

	execute := func(upgradeCmd *UpgradeCommand, args ...string) error {
		cmd := &cobra.Command{}
		cmd.AddCommand(upgradeCmd.CobraCommand)
		cmd.SetArgs(args)
		return upgradeCmd.CobraCommand.Execute()
	}

	expectVersionProbe := func(mocks Mocks, times int) {
		mocks.Runner.EXPECT().LookPath("python3").Return("/usr/bin/python3", nil).Times(times)
		mocks.Runner.EXPECT().Capture(runner.Command{Name: "/usr/bin/python3", Args: []string{"--version"}}).
			Return(runner.Result{ExitCode: 0, Output: "Python 3.11.2\n"}, nil).Times(times)
	}

	expectInstalledVersion := func(mocks Mocks) {
		mocks.Runner.EXPECT().Capture(runner.Command{Name: "/usr/bin/python3", Args: []string{"-m", "pip", "show", "kaiwa"}}).
			Return(runner.Result{ExitCode: 0, Output: pipShowOutput}, nil)
	}

	t.Run("最新の場合は何もインストールしない", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kaiwa.yml", []byte("package: kaiwa\n"))

		upgradeCmd := factory(mockCtrl, func(mocks Mocks) {
			expectVersionProbe(mocks, 1)
			expectInstalledVersion(mocks)
			mocks.GithubClient.EXPECT().LatestRelease("kaiwahq", "kaiwa").
				Return(github.Release{TagName: "v2.0.0"}, nil)
		})

		err := execute(upgradeCmd, "upgrade")
		assert.NoError(t, err)
	})

	t.Run("checkフラグは新しいリリースを報告するだけでインストールしない", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kaiwa.yml", []byte("package: kaiwa\n"))

		upgradeCmd := factory(mockCtrl, func(mocks Mocks) {
			expectVersionProbe(mocks, 1)
			expectInstalledVersion(mocks)
			mocks.GithubClient.EXPECT().LatestRelease("kaiwahq", "kaiwa").
				Return(github.Release{TagName: "v2.1.0"}, nil)
		})

		err := execute(upgradeCmd, "upgrade", "--check")
		assert.NoError(t, err)
	})

	t.Run("新しいリリースがある場合はpullして再インストールする", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kaiwa.yml", []byte("package: kaiwa\n"))

		upgradeCmd := factory(mockCtrl, func(mocks Mocks) {
			expectVersionProbe(mocks, 2)
			expectInstalledVersion(mocks)
			mocks.GithubClient.EXPECT().LatestRelease("kaiwahq", "kaiwa").
				Return(github.Release{TagName: "v2.1.0"}, nil)
			mocks.Runner.EXPECT().LookPath("git").Return("/usr/bin/git", nil)
			mocks.Runner.EXPECT().
				Stream(runner.Command{Name: "git", Args: []string{"pull", "--ff-only"}, Dir: space.Dir}, gomock.Any()).
				Return(runner.Result{ExitCode: 0}, nil)
			mocks.Timer.EXPECT().Now().Return(testUtil.NewTime("2024-06-01T12:34:56Z"))
			mocks.KsuidGenerator.EXPECT().New().Return("testRunId")
			mocks.Runner.EXPECT().Capture(runner.Command{Name: "/usr/bin/python3", Args: []string{"-m", "pip", "--version"}}).
				Return(runner.Result{ExitCode: 0, Output: "pip 24.0 from /usr/lib/python3/dist-packages/pip (python 3.11)\n"}, nil)
			mocks.Runner.EXPECT().Stream(gomock.Any(), gomock.Any()).
				Return(runner.Result{ExitCode: 0}, nil).Times(3)
		})

		err := execute(upgradeCmd, "upgrade")
		assert.NoError(t, err)

		space.AssertFile(filepath.Join(".kaiwa", "runs", "testRunId", "run.log"), func(actual []byte) {
			assert.Contains(t, string(actual), "upgrade started")
		})
	})

	t.Run("gitがない場合はエラーになる", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kaiwa.yml", []byte("package: kaiwa\n"))

		upgradeCmd := factory(mockCtrl, func(mocks Mocks) {
			expectVersionProbe(mocks, 1)
			expectInstalledVersion(mocks)
			mocks.GithubClient.EXPECT().LatestRelease("kaiwahq", "kaiwa").
				Return(github.Release{TagName: "v2.1.0"}, nil)
			mocks.Runner.EXPECT().LookPath("git").Return("", eris.New("executable file not found in $PATH"))
		})

		err := execute(upgradeCmd, "upgrade")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "git is required")
	})
}
