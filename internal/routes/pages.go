package routes

// PageID names a renderable page. The set is closed: values are only declared here, so a
// route can never point at a page the render bridge does not know about.
type PageID int

const (
	PageIndex PageID = iota
	PageIntroduction
	PageInstallation
	PageQuickStart
	PageProjectStructure
	PageRouting
	PageControllers
	PageMiddlewares
	PageORM
	PageValidation
	PageFormRequest
	PageServiceContainer
	PageServiceProvider
	PageArtisanNodeCLI
	PageTinkerNode
	PageJSBladeTemplating
	PageInertiaIntegration
	PageStringUtilities

	pageCount
)

// Shell selects the layout that wraps a page body.
type Shell int

const (
	// ShellSite wraps the body with the site header and footer.
	ShellSite Shell = iota
	// ShellDocs wraps the body with the documentation sidebar.
	ShellDocs
)

func (s Shell) String() string {
	switch s {
	case ShellSite:
		return "site"
	case ShellDocs:
		return "docs"
	default:
		return "unknown"
	}
}

type pageInfo struct {
	slug  string
	shell Shell
}

var pageTable = [pageCount]pageInfo{
	PageIndex:              {slug: "index", shell: ShellSite},
	PageIntroduction:       {slug: "introduction", shell: ShellDocs},
	PageInstallation:       {slug: "installation", shell: ShellDocs},
	PageQuickStart:         {slug: "quick-start", shell: ShellDocs},
	PageProjectStructure:   {slug: "project-structure", shell: ShellDocs},
	PageRouting:            {slug: "routing", shell: ShellDocs},
	PageControllers:        {slug: "controllers", shell: ShellDocs},
	PageMiddlewares:        {slug: "middlewares", shell: ShellDocs},
	PageORM:                {slug: "orm", shell: ShellDocs},
	PageValidation:         {slug: "validation", shell: ShellDocs},
	PageFormRequest:        {slug: "form-request", shell: ShellDocs},
	PageServiceContainer:   {slug: "service-container", shell: ShellDocs},
	PageServiceProvider:    {slug: "service-provider", shell: ShellDocs},
	PageArtisanNodeCLI:     {slug: "artisan-node-cli", shell: ShellDocs},
	PageTinkerNode:         {slug: "tinker-node", shell: ShellDocs},
	PageJSBladeTemplating:  {slug: "jsblade-templating", shell: ShellDocs},
	PageInertiaIntegration: {slug: "inertia-integration", shell: ShellDocs},
	PageStringUtilities:    {slug: "string-utilities", shell: ShellDocs},
}

// AllPages returns every declared page in declaration order.
func AllPages() []PageID {
	out := make([]PageID, 0, pageCount)
	for id := PageID(0); id < pageCount; id++ {
		out = append(out, id)
	}
	return out
}

// Valid reports whether id is one of the declared pages.
func (id PageID) Valid() bool {
	return id >= 0 && id < pageCount
}

// Slug is the content key of the page, e.g. "quick-start".
func (id PageID) Slug() string {
	if !id.Valid() {
		return ""
	}
	return pageTable[id].slug
}

// Shell returns the layout used for the page.
func (id PageID) Shell() Shell {
	if !id.Valid() {
		return ShellSite
	}
	return pageTable[id].shell
}

// String returns the page identifier handed to the render bridge:
// "Index" for the landing page and "Docs/<slug>/Index" for documentation pages.
func (id PageID) String() string {
	if !id.Valid() {
		return "PageID(invalid)"
	}
	if id == PageIndex {
		return "Index"
	}
	return "Docs/" + pageTable[id].slug + "/Index"
}
