package launch_test

import (
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	"github.com/kaiwahq/kaiwactl/domain/repository/dotenv"
	"github.com/kaiwahq/kaiwactl/domain/repository/file"
	"github.com/kaiwahq/kaiwactl/domain/service/dotfileFind"
	"github.com/kaiwahq/kaiwactl/domain/service/launch"
	"github.com/kaiwahq/kaiwactl/domain/system/runner"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"path/filepath"
	"testing"
)

func TestLaunchService(t *testing.T) {
	type Mocks struct {
		Runner     *runner.MockIRunner
		FileRepo   *file.MockRepository
		DotenvRepo *dotenv.MockRepository
	}

	factory := func(
		mockCtrl *gomock.Controller,
		customizeMocks func(mocks Mocks),
	) *launch.LaunchService {
		mockRunner := runner.NewMockIRunner(mockCtrl)
		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockDotenvRepo := dotenv.NewMockRepository(mockCtrl)

		customizeMocks(Mocks{
			Runner:     mockRunner,
			FileRepo:   mockFileRepo,
			DotenvRepo: mockDotenvRepo,
		})

		return launch.NewLaunchService(
			mockRunner,
			dotfileFind.NewDotfileFindService(mockFileRepo),
			mockDotenvRepo,
		)
	}

	dotfilePath := filepath.Join("/home/alice", ".kaiwa.env")

	expectDotfile := func(mocks Mocks, values map[string]string) {
		mocks.FileRepo.EXPECT().Getwd().Return("/work/project", nil)
		mocks.FileRepo.EXPECT().Exists(filepath.Join("/work/project", ".kaiwa.env")).Return(false)
		mocks.FileRepo.EXPECT().UserHomeDir().Return("/home/alice", nil)
		mocks.FileRepo.EXPECT().Exists(dotfilePath).Return(true)
		mocks.DotenvRepo.EXPECT().Read(dotfilePath).Return(values, nil)
	}

	t.Run("端末エントリポイントにドットファイルの環境変数が渡される", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		testee := factory(mockCtrl, func(mocks Mocks) {
			mocks.Runner.EXPECT().LookPath("kaiwa").Return("/usr/local/bin/kaiwa", nil)
			expectDotfile(mocks, map[string]string{
				"KAIWA_PROVIDER": "groq",
				"GROQ_API_KEY":   "gsk_abcdefghijkl",
			})
			mocks.Runner.EXPECT().Interactive(runner.Command{
				Name: "/usr/local/bin/kaiwa",
				Env:  []string{"GROQ_API_KEY=gsk_abcdefghijkl", "KAIWA_PROVIDER=groq"},
			}).Return(nil)
		})

		err := testee.Terminal(config.Default())
		assert.NoError(t, err)
	})

	t.Run("エントリポイントが未インストールの場合は案内付きのエラーを返す", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		testee := factory(mockCtrl, func(mocks Mocks) {
			mocks.Runner.EXPECT().LookPath("kaiwa").Return("", eris.New("executable file not found in $PATH"))
		})

		err := testee.Terminal(config.Default())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "kaiwactl install")
	})

	t.Run("Webエントリポイントにはホストとポートとshareフラグが渡される", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		testee := factory(mockCtrl, func(mocks Mocks) {
			mocks.Runner.EXPECT().LookPath("kaiwa-web").Return("/usr/local/bin/kaiwa-web", nil)
			expectDotfile(mocks, map[string]string{})
			mocks.Runner.EXPECT().Interactive(runner.Command{
				Name: "/usr/local/bin/kaiwa-web",
				Args: []string{"--host", "0.0.0.0", "--port", "8080", "--share"},
				Env:  []string{},
			}).Return(nil)
		})

		err := testee.Web(config.Default(), launch.WebOption{Host: "0.0.0.0", Port: 8080, Share: true})
		assert.NoError(t, err)
	})

	t.Run("ドットファイルがない場合は環境変数を追加しない", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		testee := factory(mockCtrl, func(mocks Mocks) {
			mocks.Runner.EXPECT().LookPath("kaiwa").Return("/usr/local/bin/kaiwa", nil)
			mocks.FileRepo.EXPECT().Getwd().Return("/work/project", nil)
			mocks.FileRepo.EXPECT().Exists(filepath.Join("/work/project", ".kaiwa.env")).Return(false)
			mocks.FileRepo.EXPECT().UserHomeDir().Return("/home/alice", nil)
			mocks.FileRepo.EXPECT().Exists(dotfilePath).Return(false)
			mocks.Runner.EXPECT().Interactive(runner.Command{
				Name: "/usr/local/bin/kaiwa",
			}).Return(nil)
		})

		err := testee.Terminal(config.Default())
		assert.NoError(t, err)
	})
}
