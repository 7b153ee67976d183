package configs

type Configs struct {
	ApplicationEnv      string `mapstructure:"app_env"`
	ApplicationLogLevel string `mapstructure:"app_log_level"`
	ApplicationName     string `mapstructure:"app_name"`
	ApplicationPort     int    `mapstructure:"app_port"`

	//telegraf-config
	MetricsSamplingRate string `mapstructure:"metrics_sampling_rate"`
	Telegraf_Host       string `mapstructure:"telegraf_host"`
	Telegraf_Port       string `mapstructure:"telegraf_port"`

	//evaluation-config
	InferFileDir     string `mapstructure:"evaluation_inferFileDir"`
	ModelConfigPath  string `mapstructure:"evaluation_modelConfigPath"`
	EvaluateFromFile bool   `mapstructure:"evaluation_fromFile"`
}

type DynamicConfigs struct {
}

type AppConfigs struct {
	Configs        Configs
	DynamicConfigs DynamicConfigs
}

func (a *AppConfigs) GetStaticConfig() interface{} {
	return &a.Configs
}

func (a *AppConfigs) GetDynamicConfig() interface{} {
	return &a.Configs
}
