package config

const (
	// EnvPrefix is empty because every variable name already carries the
	// GUSTITO_ prefix in its envconfig tag.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "GUSTITO_DB_DSN"
	EnvDBHost = "GUSTITO_DB_HOST"
	EnvDBUser = "GUSTITO_DB_USER"
	EnvDBName = "GUSTITO_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
