package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	Redis    struct {
		Addr     string
		Password string
		DB       int
	}
	App struct {
		Host string
		Port int
	}
	Upload struct {
		Dir       string
		MaxSizeMB int64
	}
}
