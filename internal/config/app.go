package config

type App struct {
	Name    string `env:"APP_NAME" envDefault:"market-seeder"`
	Version string `env:"APP_VERSION" envDefault:"dev"`

	ProbeListenAddress   string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8091"`
	MetricsListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":8092"`
}
