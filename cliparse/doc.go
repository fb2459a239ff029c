/*
Package cliparse handles configuration from CLI flags and environment
variables.

CLI flags take precedence over environment variables. BASE_URL is the only
required setting; the database defaults to a local sqlite file and the LINE
credentials are optional (notifications are disabled when absent).
*/
package cliparse
