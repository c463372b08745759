package launch

import (
	"fmt"
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	"github.com/kaiwahq/kaiwactl/domain/repository/dotenv"
	"github.com/kaiwahq/kaiwactl/domain/service/dotfileFind"
	"github.com/kaiwahq/kaiwactl/domain/system/runner"
	"github.com/rotisserie/eris"
	"sort"
	"strconv"
)

// Webエントリポイントの既定の待ち受けアドレスです。
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 7860
)

// LaunchService はインストール済みのエントリポイントを起動します。
// 起動前に .kaiwa.env の内容を環境変数として子プロセスに渡します。
type LaunchService struct {
	runner             runner.IRunner
	dotfileFindService *dotfileFind.DotfileFindService
	dotenvRepository   dotenv.Repository
}

type WebOption struct {
	Host  string
	Port  int
	Share bool
}

func NewLaunchService(
	runner runner.IRunner,
	dotfileFindService *dotfileFind.DotfileFindService,
	dotenvRepository dotenv.Repository,
) *LaunchService {
	return &LaunchService{
		runner:             runner,
		dotfileFindService: dotfileFindService,
		dotenvRepository:   dotenvRepository,
	}
}

func (s *LaunchService) Terminal(cfg *config.Config) error {
	path, env, err := s.prepare(cfg.EntryPoints.Terminal)
	if err != nil {
		return err
	}

	return s.runner.Interactive(runner.Command{Name: path, Env: env})
}

func (s *LaunchService) Web(cfg *config.Config, opt WebOption) error {
	path, env, err := s.prepare(cfg.EntryPoints.Web)
	if err != nil {
		return err
	}

	args := []string{"--host", opt.Host, "--port", strconv.Itoa(opt.Port)}
	if opt.Share {
		args = append(args, "--share")
	}

	return s.runner.Interactive(runner.Command{Name: path, Args: args, Env: env})
}

func (s *LaunchService) prepare(entryPoint string) (string, []string, error) {
	path, err := s.runner.LookPath(entryPoint)
	if err != nil {
		return "", nil, eris.Errorf("%s is not installed (run 'kaiwactl install' first)", entryPoint)
	}

	env, err := s.dotfileEnv()
	if err != nil {
		return "", nil, err
	}

	return path, env, nil
}

func (s *LaunchService) dotfileEnv() ([]string, error) {
	path, found, err := s.dotfileFindService.Find()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	values, err := s.dotenvRepository.Read(path)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, fmt.Sprintf("%s=%s", k, values[k]))
	}
	return env, nil
}
