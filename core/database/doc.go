// Package database provides the MySQL connection used by the onboarding
// loader.
//
// The connection is opened once per load invocation, verified with a ping, and
// passed explicitly to the components that need it. The pool is pinned to a
// single connection because the loader is strictly single-writer; natural-key
// upserts are not safe against concurrent writers.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
package database
