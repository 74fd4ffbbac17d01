package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (p Postgres) ConnStr() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s", p.Host, p.User, p.Password, p.DBName, p.Port, p.SSLMode)
}

type Server struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type Bot struct {
	Token   string `mapstructure:"token"`
	APIURL  string `mapstructure:"apiUrl"`
	Retries int    `mapstructure:"retries"`
	Debug   bool   `mapstructure:"debug"`
}

// Sessions selects where the wizard keeps per-user progress. The memory
// backend lives for the process lifetime only.
type Sessions struct {
	Backend    string `mapstructure:"backend"` // memory, redis or sqlite
	RedisAddr  string `mapstructure:"redisAddr"`
	SqlitePath string `mapstructure:"sqlitePath"`
}

type Config struct {
	Postgres Postgres `mapstructure:"postgres"`
	Server   Server   `mapstructure:"server"`
	Bot      Bot      `mapstructure:"bot"`
	Sessions Sessions `mapstructure:"sessions"`
}

func LoadConfig() *Config {
	viper.SetConfigFile("./config/config.yaml")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatal(err)
	}

	if config.Bot.Retries < 1 {
		config.Bot.Retries = 3
	}

	return &config
}
