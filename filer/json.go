package filer

import (
	"os"

	"github.com/cockroachdb/errors"

	"congruence-pkg/parser"
)

// JsonFiler ファイル入出力用のインターフェース
type JsonFiler interface {
	Save(name string, i any) error
	Load(name string, in any) error
}

type jsonFiler struct {
	parser parser.Parser
}

// NewJsonFiler json形式版
// p が nil の場合は整形済みの JSONParser を使う
func NewJsonFiler(p parser.Parser) JsonFiler {
	if p == nil {
		p = &parser.JSONParser{Indent: "  "}
	}
	return &jsonFiler{parser: p}
}

// Save データをjson形式にしてファイル出力
func (e jsonFiler) Save(name string, i any) error {
	b, err := e.parser.Marshal(i)
	if err != nil {
		return errors.Errorf("failed to json marshal: %w", err)
	}

	// - ファイルが存在しない場合、新規ファイル作成
	// - ファイルが存在する場合、内容を全て置き換える
	if err := os.WriteFile(name, append(b, '\n'), 0o644); err != nil {
		return errors.Errorf("failed to write file %q: %w", name, err)
	}

	return nil
}

// Load ファイルから読み込んだjsonを任意の構造体に変換
func (e jsonFiler) Load(name string, in any) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return errors.Errorf("failed to read file: %w", err)
	}

	if err := e.parser.Unmarshal(b, in); err != nil {
		return errors.Errorf("failed to json unmarshal: %w", err)
	}

	return nil
}
