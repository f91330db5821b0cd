package config

import "github.com/caarlos0/env/v11"

// Config reúne a configuração do processo, lida do ambiente.
// Com DATABASE_URL vazio o servidor sobe com o armazenamento em memória
// e os dados de demonstração.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
}

// Load lê a configuração das variáveis de ambiente.
func Load() (Config, error) {
	var cfg Config
	return cfg, env.Parse(&cfg)
}
