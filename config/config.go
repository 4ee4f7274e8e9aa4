package env

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	cmdDir    = "cmd"
	configDir = "configs"
)

// ErrReadConfig 設定の読み込みエラー
var ErrReadConfig = errors.New("read config error")

// Options 読み込み方法の指定
type Options struct {
	// DirPath YAMLを探すディレクトリ。空なら呼び出し元の cmd 配下から求める
	DirPath string
	// EnvPrefix 環境変数の接頭辞(CONGRUENCE なら CONGRUENCE_LOG_LEVEL)
	EnvPrefix string
	// Defaults キーごとのデフォルト値
	Defaults map[string]any
	// Flags キー名の . と _ を - に置換した名前のフラグを紐づける
	Flags *pflag.FlagSet
	// Required true ならYAMLが存在しない場合にエラーにする
	Required bool
}

// Read はデフォルト値・YAML・環境変数・フラグの順に上書きしてコンフィグを取得
func Read(cfg any, opts Options) error {
	if opts.DirPath == "" {
		opts.DirPath = getConfigDirPath(2)
	}
	return read(cfg, GetAppEnv(), opts)
}

// read はconfigの読み込みを実施
func read(cfg any, cfgName string, opts Options) error {
	v := viper.New()

	for k, d := range opts.Defaults {
		v.SetDefault(k, d)
	}

	v.SetEnvPrefix(opts.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		toFlag := strings.NewReplacer(".", "-", "_", "-")
		for k := range opts.Defaults {
			f := opts.Flags.Lookup(toFlag.Replace(k))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(k, f); err != nil {
				return errors.Wrapf(ErrReadConfig, "bind flag %s: %v", f.Name, err)
			}
		}
	}

	v.SetConfigName(cfgName)
	v.SetConfigType("yaml")
	v.AddConfigPath(opts.DirPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.Required || !errors.As(err, &notFound) {
			return errors.Wrapf(ErrReadConfig, "read cfg %s in %s: %v", cfgName, opts.DirPath, err)
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return errors.Wrapf(ErrReadConfig, "parse cfg: %v", err)
	}
	return nil
}

// getConfigDirPath configディレクトリの取得(readでのみ使用)
func getConfigDirPath(skip int) string {
	// クロスプラットフォーム対策
	_, file, _, _ := runtime.Caller(skip)
	dirList := strings.Split(filepath.ToSlash(filepath.Dir(file)), "/")
	dirPath := "./"

	for i, dir := range dirList {
		if dir == cmdDir {
			dirPath = filepath.Join(configDir, filepath.Join(dirList[i+1:]...))
			break
		}
	}
	return dirPath
}
