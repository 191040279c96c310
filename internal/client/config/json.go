package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophsocial/internal/flagx"
	"github.com/dmitrijs2005/gophsocial/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields let a
// file set only some values; everything absent keeps its current value.
type JsonConfig struct {
	StorageBackend *string `json:"storage_backend"`
	DataDir        *string `json:"data_dir"`
	DatabaseFile   *string `json:"database_file"`

	RedisAddr     *string `json:"redis_addr"`
	RedisPassword *string `json:"redis_password"`
	RedisPrefix   *string `json:"redis_prefix"`

	LoginDelay    *timex.Duration `json:"login_delay"`
	RegisterDelay *timex.Duration `json:"register_delay"`
	PostDelay     *timex.Duration `json:"post_delay"`
	FeedDelay     *timex.Duration `json:"feed_delay"`

	DemoUserName *string `json:"demo_user_name"`
	LogLevel     *string `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. Read and decode
// errors panic; the binary cannot start with a broken config.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.DatabaseFile, jc.DatabaseFile)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPassword, jc.RedisPassword)
	setString(&cfg.RedisPrefix, jc.RedisPrefix)
	setString(&cfg.DemoUserName, jc.DemoUserName)
	setString(&cfg.LogLevel, jc.LogLevel)

	if jc.LoginDelay != nil {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
	if jc.RegisterDelay != nil {
		cfg.RegisterDelay = jc.RegisterDelay.Duration
	}
	if jc.PostDelay != nil {
		cfg.PostDelay = jc.PostDelay.Duration
	}
	if jc.FeedDelay != nil {
		cfg.FeedDelay = jc.FeedDelay.Duration
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
