package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

func Load() (App, error) {
	var cfg App
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return App{}, err
	}
	return cfg, nil
}
