package config

type App struct {
	Port          string `env:"APP_PORT" env-default:"8080"`
	DatabaseURL   string `env:"DATABASE_URL" env-required:"true"`
	JWTSecret     string `env:"JWT_SECRET" env-default:"dev-secret-change-me"`
	JWTExpiresMin int    `env:"JWT_EXPIRES_MIN" env-default:"120"`
	DBMaxConns    int32  `env:"DB_MAX_CONNS" env-default:"10"`
	Env           string `env:"APP_ENV" env-default:"dev"`
}
