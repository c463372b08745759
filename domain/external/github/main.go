//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package github

import "time"

// Client はGitHub Releases APIとの通信を抽象化するインターフェースです。
type Client interface {
	// LatestRelease は owner/repo の最新リリースを返します。
	// ステータスコード200以外が返却された場合、レスポンスボディ全体をエラーメッセージに含めます。
	LatestRelease(owner string, repo string) (Release, error)
}

// Release はGitHub上の1リリースを表します。
type Release struct {
	TagName     string
	Name        string
	Body        string
	HTMLURL     string
	PublishedAt time.Time
}
