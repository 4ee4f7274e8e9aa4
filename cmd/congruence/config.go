package main

// Config congruence コマンドの設定
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	Prompt struct {
		MaxTries uint `mapstructure:"max_tries"`
	} `mapstructure:"prompt"`

	Output struct {
		Format    string `mapstructure:"format"`
		File      string `mapstructure:"file"`
		MaxListed int    `mapstructure:"max_listed"`
	} `mapstructure:"output"`
}

const (
	formatText = "text"
	formatJSON = "json"
)

func defaults() map[string]any {
	return map[string]any{
		"log.level":         "warn",
		"log.format":        formatText,
		"prompt.max_tries":  3,
		"output.format":     formatText,
		"output.file":       "",
		"output.max_listed": 16,
	}
}
