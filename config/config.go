package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "SHOPFRONT_CONFIG_FILE"

type topics struct {
	Orders           string `mapstructure:"orders"`
	RegionStatsTable string `mapstructure:"region_stats_table"`
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	Topics             topics   `mapstructure:"topics"`
}

type mailer struct {
	Endpoint   string `mapstructure:"endpoint"`
	ServiceID  string `mapstructure:"service_id"`
	TemplateID string `mapstructure:"template_id"`
	UserID     string `mapstructure:"user_id"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	SQLDB          string     `mapstructure:"sql_db"`
	AdminToken     string     `mapstructure:"admin_token"`
	Broker         broker     `mapstructure:"broker"`
	Mailer         mailer     `mapstructure:"mailer"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SQLDB=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		Orders=%q
		RegionStatsTable=%q

	Mailer:
	Endpoint=%q
	ServiceID=%q
	TemplateID=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SQLDB,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.Orders,
		c.Broker.Topics.RegionStatsTable,
		c.Mailer.Endpoint,
		c.Mailer.ServiceID,
		c.Mailer.TemplateID,
	)
}
