package usecase

import (
	"strings"
	"time"
)

// 取引IDの発行。実装はmainで注入する。
type IDGenerator interface {
	NewID() string
}

// 現在時刻。テストで差し替えるために切り出す。
type Clock interface {
	Now() time.Time
}

// 保存形式の区切り文字。自由入力には使わせない。
// エスケープを持たないフラットファイル形式を守るための入力制約。
func containsReservedChar(s string) bool {
	return strings.ContainsAny(s, "|*\r\n")
}
