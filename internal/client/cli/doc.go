// Package cli implements the interactive DreamHost command-line client: a
// read–eval–print loop over the session manager, the access resolver, and
// the REST gateway. Commands mirror the web client's routes: browsing and
// searching the global catalog, viewing recipe details, toggling favorites,
// and managing the user's personal recipe library and profile.
package cli
