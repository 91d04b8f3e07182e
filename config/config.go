package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type SystemConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type StoreConfig struct {
	// Filename is the bbolt database file, relative names resolve under Workdir.
	Filename string `yaml:"filename" json:"filename"`
}

type WebhookConfig struct {
	// GenerateURL is the workflow endpoint that turns a prompt into
	// product/avatar payloads.
	GenerateURL string `yaml:"generate_url" json:"generate_url"`
	Timeout     int    `yaml:"timeout" json:"timeout"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System  SystemConfig  `yaml:"system" json:"system"`
	Web     WebConfig     `yaml:"web" json:"web"`
	Store   StoreConfig   `yaml:"store" json:"store"`
	Webhook WebhookConfig `yaml:"webhook" json:"webhook"`
	Logger  LoggerConfig  `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SystemConfig{
		Appid:    "adforge",
		Location: "Asia/Shanghai",
		Workdir:  "/var/adforge",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1816,
	},
	Store: StoreConfig{
		Filename: "adforge.db",
	},
	Webhook: WebhookConfig{
		GenerateURL: "",
		Timeout:     60,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/adforge/adforge.log",
	},
}

func (c *AppConfig) GetLogDir() string {
	return filepath.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return filepath.Join(c.System.Workdir, "data")
}

// StorePath resolves the bbolt database location under the data dir
// unless an absolute filename was configured.
func (c *AppConfig) StorePath() string {
	if filepath.IsAbs(c.Store.Filename) {
		return c.Store.Filename
	}
	return filepath.Join(c.GetDataDir(), c.Store.Filename)
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

// LoadConfig reads the yaml configuration file and applies environment
// overrides. A missing or unreadable file yields the default configuration.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		if err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("ADFORGE_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("ADFORGE_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("ADFORGE_WEBHOOK_GENERATE_URL", func(v string) { cfg.Webhook.GenerateURL = v })
	return cfg
}
