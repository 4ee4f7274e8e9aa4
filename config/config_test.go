package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Prompt struct {
		MaxTries uint `mapstructure:"max_tries"`
	} `mapstructure:"prompt"`
}

func defaults() map[string]any {
	return map[string]any{
		"log.level":        "info",
		"prompt.max_tries": 3,
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create config: %v", err)
	}
	return dir
}

func TestGetAppEnv(t *testing.T) {
	t.Setenv(Key, "")
	assert.Equal(t, DefaultEnv, GetAppEnv())

	t.Setenv(Key, "prd")
	assert.Equal(t, "prd", GetAppEnv())
}

func TestRead(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		env       map[string]string
		args      []string
		required  bool
		wantLevel string
		wantTries uint
		wantErr   bool
	}{
		{
			name:      "正常系: デフォルト値のみ",
			wantLevel: "info",
			wantTries: 3,
		},
		{
			name:      "正常系: YAMLで上書き",
			yaml:      "log:\n  level: debug\nprompt:\n  max_tries: 5\n",
			wantLevel: "debug",
			wantTries: 5,
		},
		{
			name:      "正常系: 環境変数がYAMLより優先",
			yaml:      "log:\n  level: debug\n",
			env:       map[string]string{"CONGRUENCE_LOG_LEVEL": "warn"},
			wantLevel: "warn",
			wantTries: 3,
		},
		{
			name:      "正常系: フラグが最優先",
			yaml:      "log:\n  level: debug\n",
			env:       map[string]string{"CONGRUENCE_LOG_LEVEL": "warn"},
			args:      []string{"--log-level", "error"},
			wantLevel: "error",
			wantTries: 3,
		},
		{
			name:     "異常系: 必須なのにYAMLがない",
			required: true,
			wantErr:  true,
		},
		{
			name:    "異常系: 不正なYAML",
			yaml:    "log: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(Key, "unit")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			if tt.yaml != "" {
				dir = writeConfig(t, "unit", tt.yaml)
			}

			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.String("log-level", "info", "")
			require.NoError(t, flags.Parse(tt.args))

			var cfg testConfig
			err := Read(&cfg, Options{
				DirPath:   dir,
				EnvPrefix: "CONGRUENCE",
				Defaults:  defaults(),
				Flags:     flags,
				Required:  tt.required,
			})

			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrReadConfig), "err = %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, cfg.Log.Level)
			assert.Equal(t, tt.wantTries, cfg.Prompt.MaxTries)
		})
	}
}

func TestGetConfigDirPath(t *testing.T) {
	// テストファイルは cmd 配下にないのでカレントディレクトリになる
	assert.Equal(t, "./", getConfigDirPath(1))
}
