package routes

// defaultEntries is the canonical route table of the site. "/docs" serves the
// introduction page directly rather than redirecting.
var defaultEntries = []Entry{
	{Path: "/", Page: PageIndex},
	{Path: "/docs/introduction", Page: PageIntroduction},
	{Path: "/docs", Page: PageIntroduction},
	{Path: "/docs/installation", Page: PageInstallation},
	{Path: "/docs/quick-start", Page: PageQuickStart},
	{Path: "/docs/project-structure", Page: PageProjectStructure},
	{Path: "/docs/routing", Page: PageRouting},
	{Path: "/docs/controllers", Page: PageControllers},
	{Path: "/docs/middlewares", Page: PageMiddlewares},
	{Path: "/docs/orm", Page: PageORM},
	{Path: "/docs/validation", Page: PageValidation},
	{Path: "/docs/form-request", Page: PageFormRequest},
	{Path: "/docs/service-container", Page: PageServiceContainer},
	{Path: "/docs/service-provider", Page: PageServiceProvider},
	{Path: "/docs/artisan-node-cli", Page: PageArtisanNodeCLI},
	{Path: "/docs/tinker-node", Page: PageTinkerNode},
	{Path: "/docs/jsblade-templating", Page: PageJSBladeTemplating},
	{Path: "/docs/inertia-integration", Page: PageInertiaIntegration},
	{Path: "/docs/string-utilities", Page: PageStringUtilities},
}

// DefaultEntries returns a copy of the canonical entries.
func DefaultEntries() []Entry {
	out := make([]Entry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

// Default builds the canonical route table.
func Default() (*Table, error) {
	return NewTable(defaultEntries...)
}
