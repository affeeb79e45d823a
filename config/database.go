package config

// DBConfig contains PostgreSQL connection configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"goldengigs"`
	Password string `env:"PASSWORD" envDefault:"goldengigs"`
	Name     string `env:"NAME"     envDefault:"goldengigs"`
	SSLMode  string `env:"SSLMODE"  envDefault:"disable"`

	// RunMigrationsOnStart applies pending migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"       envDefault:"0"`
}

// Sanitize applies guardrails to Redis configuration values.
func (c *RedisConfig) Sanitize() {
	if c.DB < 0 {
		c.DB = 0
	}
}
