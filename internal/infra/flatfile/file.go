package flatfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateExclusive は path に新規ファイルを作る。既存ファイルは
// 上書きせず、拡張子の前に連番を足した空き名を探す
// （store.txt → store1.txt → store2.txt …）。
// 実際に作成したパスを返す。
func CreateExclusive(path string) (*os.File, string, error) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	candidate := path
	for counter := 1; ; counter++ {
		f, err := os.OpenFile(candidate, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, candidate, nil
		}
		if !os.IsExist(err) {
			return nil, "", err
		}
		candidate = fmt.Sprintf("%s%d%s", base, counter, ext)
	}
}
