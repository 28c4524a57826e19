// Package bref implements the Basketball-Reference site client: season
// discovery and validation, per-game stats retrieval, game-log retrieval
// with season and table-id fallback, and player search.
//
// Table identifiers and page structure drift across the site's history, so
// the game-log path tries a small ordered set of seasons and known table
// ids rather than attempting to version-detect the page. Season discovery
// validates each candidate year by probing its per-game stats table, which
// guards against the newest season's page existing before its stats are
// populated.
//
// All operations are sequential and synchronous with no caching or backoff;
// a failed candidate is simply followed by the next one, and only
// exhaustion of every candidate becomes an error.
package bref
