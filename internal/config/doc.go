// Package config assembles the vault server configuration.
//
// Sources are applied in this order, each overriding non-zero fields of the
// previous ones: a .env file, environment variables, command-line flags and
// finally the JSON file named by -c or CONFIG. Defaults fill whatever is
// still empty, then the result is validated.
//
// The master secret can be supplied inline (APP_MASTER_SECRET) or as a file
// path (APP_MASTER_SECRET_FILE) for secret mounts. Use [GetStructuredConfig].
package config
