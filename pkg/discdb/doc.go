// Package discdb provides a client for TheDiscDB disc identification catalog.
//
// Lookups run against the catalog's GraphQL endpoint and return media items
// (movies and series) with their releases, discs, titles and chapters:
//
//	client := discdb.New(discdb.WithLogger(logger))
//
//	hash, err := client.Hash(ctx, files)
//	if err != nil {
//		return err
//	}
//	item, err := client.GetMediaItemByDiscHash(ctx, hash)
//	if errors.Is(err, discdb.ErrNotFound) {
//		// unknown disc
//	}
//
// Single-result lookups return the first match reported by the server.
// GetMediaItemsByDiscHashes returns every match, grouped by hash.
//
// The client performs exactly one HTTP request per call. It does not retry,
// cache or paginate; cancellation and timeouts come from the context and the
// configured *http.Client.
package discdb
