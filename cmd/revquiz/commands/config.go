package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	QuestionsDir    string        `mapstructure:"questions_dir"`
	PerformanceFile string        `mapstructure:"performance_file"`
	Format          string        `mapstructure:"format"`
	Match           MatchSettings `mapstructure:"match"`
}

type MatchSettings struct {
	FuzzyThreshold    float64 `mapstructure:"fuzzy_threshold"`
	ContainmentMinLen int     `mapstructure:"containment_min_len"`
	FuzzyBackend      string  `mapstructure:"fuzzy_backend"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".revquiz")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
