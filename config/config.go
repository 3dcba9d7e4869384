package config

import "github.com/spf13/viper"

type Config struct {
	Port string `mapstructure:"port"`

	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`

	// DataDir holds the roster and team record CSV files.
	DataDir string `mapstructure:"data_dir"`

	TeamName        string `mapstructure:"team_name"`
	TeamFounded     string `mapstructure:"team_founded"`
	TeamDescription string `mapstructure:"team_description"`
}

// Load builds the configuration from environment variables (a .env
// file, if any, is loaded into the environment by the caller first).
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "fc_ssoa")
	v.SetDefault("data_dir", "data")
	v.SetDefault("team_name", "FC Ssoa")
	v.SetDefault("team_founded", "2020")
	v.SetDefault("team_description", "FC Ssoa is an early morning soccer club sharing passion, teamwork and a love of the game.")

	// Bind the keys we read so AutomaticEnv picks them up on Unmarshal.
	for _, key := range []string{
		"port",
		"db_host", "db_port", "db_user", "db_password", "db_name",
		"data_dir",
		"team_name", "team_founded", "team_description",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
