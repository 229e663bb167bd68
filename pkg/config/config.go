package config

type Config struct {
	General `mapstructure:"general"`
	Grpc    `mapstructure:"grpc"`
	Batch   `mapstructure:"batch"`
}

type General struct {
	DatabasePath string `mapstructure:"database_path"`
	LogDir       string `mapstructure:"log_dir"`
	Debug        bool   `mapstructure:"debug"`
}

type Grpc struct {
	Port int `mapstructure:"port"`
	// CACert, ServerCert and ServerKey enable mutual TLS when all three are
	// set; the listener is insecure otherwise.
	CACert     string `mapstructure:"ca_cert"`
	ServerCert string `mapstructure:"server_cert"`
	ServerKey  string `mapstructure:"server_key"`
}

type Batch struct {
	SbatchPath  string `mapstructure:"sbatch_path"`
	ScancelPath string `mapstructure:"scancel_path"`
	BashPath    string `mapstructure:"bash_path"`
}
