// Package pagination provides paged access to museum collections.
//
// Two backend shapes are supported:
//
//   - IDSource (Met-style): search returns the full ordered id list once; each
//     page slices it and hydrates every id in parallel. IDListFetcher caches
//     the id list per query in a cache.Store, so paging never repeats the search.
//   - PageSource (AIC-style): the backend paginates itself. NativeFetcher makes
//     one listing call per page.
//
// Hydration fans out with errgroup and joins all-or-nothing: one failed item
// fails the page, and items always come back in id-list order.
//
// Session holds the single live FetchState for a UI. State changes go
// through the pure Transition function; each request carries a Token and only
// the latest token's result is applied.
//
// Example usage:
//
//	fetcher := pagination.NewIDListFetcher("met", metClient, store, pagination.DefaultConfig(), logger)
//	session := pagination.NewSession("met", fetcher, logger)
//
//	state := session.Select(ctx, "Asian Art")
//	if state.Status == pagination.StatusFailed {
//		fmt.Println(state.Message())
//	}
//	state, _ = session.Next(ctx)
package pagination
