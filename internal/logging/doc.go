// Package logging provides structured logging for the catalog tool.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless CATALOG_LOG_LEVEL is set, so command output stays clean.
//
// # Log Levels
//
//   - Debug: search and pagination events
//   - Info: products created or edited
//   - Warn: recoverable problems (bad seed entries, unreadable config)
//   - Error: failures surfaced to the user
//
// # Output
//
// Entries go to stderr, or to the file named by CATALOG_LOG_FILE. The
// full-screen interface only logs when a file is configured:
//
//	CATALOG_LOG_LEVEL=debug CATALOG_LOG_FILE=/tmp/catalog.log catalog
//
// # Structured Logging
//
//	logging.Info("Seed loaded",
//	    zap.String("path", path),
//	    zap.Int("products", len(products)),
//	)
package logging
