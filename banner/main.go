package banner

import (
	_ "embed"
	"strings"
	"text/template"
)

//go:embed banner.txt.tmpl
var bannerTmpl string

type BannerParam struct {
	Package  string
	Terminal string
	Web      string
	Host     string
	Port     int
}

// BuildBanner はインストール完了後に表示するバナーを組み立てます。
func BuildBanner(param BannerParam) (string, error) {
	tmpl, err := template.New("banner").Parse(bannerTmpl)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	err = tmpl.Execute(&output, param)
	if err != nil {
		return "", err
	}

	return output.String(), nil
}
