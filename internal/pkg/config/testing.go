package config

// NewTestConfig returns a config with sane defaults for tests. Callers
// override DB and Signer with environment-specific values.
func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8080",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "test",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret-for-tests-only",
			Duration: "1h",
		},
	}
}
