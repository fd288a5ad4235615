package config

import (
	"fmt"
	"strings"
	"time"

	"fund-dashboard/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config.dashboard"
	DefaultDir = "./config/"
	envPrefix  = "FUND_DASHBOARD"
)

// Config 定义整个配置的结构
type Config struct {
	Log       LogConfig        `mapstructure:"log"`
	Subgraph  SubgraphConfig   `mapstructure:"subgraph"`
	RPC       RPCConfig        `mapstructure:"rpc"`
	Redis     RedisConfig      `mapstructure:"redis"`
	Monitor   MonitorConfig    `mapstructure:"monitor"`
	Watch     WatchFundsConfig `mapstructure:"watch"`
	Contracts ContractsConfig  `mapstructure:"contracts"`
}

// LogConfig Log 日志配置
type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// SubgraphConfig 两个 GraphQL endpoint: 数据子图 + block 子图
type SubgraphConfig struct {
	DataURL          string `mapstructure:"data_url"`
	BlockURL         string `mapstructure:"block_url"`
	APIKey           string `mapstructure:"api_key"`
	Timeout          int    `mapstructure:"timeout"`    // 秒
	RateLimit        int    `mapstructure:"rate_limit"` // 每分钟
	BlockCacheTTL    int    `mapstructure:"block_cache_ttl"` // 秒
	SkipUnsetQueries bool   `mapstructure:"skip_unset_queries"`
}

type RPCConfig struct {
	URL string `mapstructure:"url"`
}

// RedisConfig Redis 配置, address 为空则只用本地缓存
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MonitorConfig struct {
	Enable         bool   `mapstructure:"enable"`
	PrometheusAddr string `mapstructure:"prometheus_addr"`
}

// WatchFundsConfig 定时刷新的基金列表
type WatchFundsConfig struct {
	Interval int      `mapstructure:"interval"` // 秒
	Funds    []string `mapstructure:"funds"`
}

type ContractsConfig struct {
	Factory string `mapstructure:"factory"`
	Fund    string `mapstructure:"fund"`
	Staking string `mapstructure:"staking"`
	WETH    string `mapstructure:"weth"`
}

func (c SubgraphConfig) TimeoutDuration() time.Duration {
	if c.Timeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

func (c SubgraphConfig) BlockCacheTTLDuration() time.Duration {
	if c.BlockCacheTTL <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.BlockCacheTTL) * time.Second
}

func (c WatchFundsConfig) IntervalDuration() time.Duration {
	if c.Interval <= 0 {
		return time.Minute
	}
	return time.Duration(c.Interval) * time.Second
}

// Validate 启动前检查必填项
func (c Config) Validate() error {
	if strings.TrimSpace(c.Subgraph.DataURL) == "" {
		return fmt.Errorf("subgraph.data_url is required")
	}
	if strings.TrimSpace(c.Subgraph.BlockURL) == "" {
		return fmt.Errorf("subgraph.block_url is required")
	}
	return nil
}

func InitConfig() Config {
	cfg, err := Load(DefaultDir)
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}
	return cfg
}

// Load 读取 <dir>/config.dashboard.yaml, 环境变量 FUND_DASHBOARD_* 可覆盖
func Load(dir string) (Config, error) {
	var config Config

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return config, err
	}
	if err := decode(v, &config); err != nil {
		return config, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("subgraph.data_url", "")
	v.SetDefault("subgraph.block_url", "")
	v.SetDefault("subgraph.api_key", "")
	v.SetDefault("subgraph.timeout", 10)
	v.SetDefault("subgraph.rate_limit", 600)
	v.SetDefault("subgraph.block_cache_ttl", 86400)
	v.SetDefault("subgraph.skip_unset_queries", false)
	v.SetDefault("rpc.url", "")
	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("monitor.enable", false)
	v.SetDefault("monitor.prometheus_addr", ":9108")
	v.SetDefault("watch.interval", 60)
	v.SetDefault("watch.funds", []string{})
	for _, k := range []string{"factory", "fund", "staking", "weth"} {
		v.SetDefault("contracts."+k, "")
	}
}

// decode 环境变量均为字符串, 需要弱类型转换
func decode(v *viper.Viper, out *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return err
	}
	return dec.Decode(v.AllSettings())
}

// WatchConfig 配置文件变更后只热更新日志级别, 其它配置需要重启
func WatchConfig(dir string, config *Config) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		newConfig, err := Load(dir)
		if err != nil {
			return
		}
		config.Log.Level = newConfig.Log.Level
		logger.SetLogLevel(config.Log.Level)
	})
	v.WatchConfig()
}
