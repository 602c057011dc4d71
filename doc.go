// Package crud provides a role-based CRUD toolkit for model-backed web
// applications.
//
// Given an entity type and a field list, a [Resource] generates its URL
// routes, resolves records by a configurable lookup field, renders
// list/detail/form/confirm templates, and handles form submission and
// deletion. Five roles drive the generation: list, detail, create, update
// and delete.
//
// # Quick Start
//
// Declare a resource and mount it on an application:
//
//	db, err := repo.OpenSQLite("bookmarks.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bookmarks := crud.MustResource(repo.NewGorm(db), crud.Config{
//	    Model:        Bookmark{},
//	    Fields:       []string{"url", "title", "favourite"},
//	    FilterFields: []string{"favourite"},
//	})
//
//	app := crud.New(
//	    crud.WithResources(bookmarks),
//	)
//	if err := app.Run(":8080"); err != nil {
//	    log.Fatal(err)
//	}
//
// This registers five routes:
//
//	GET       /bookmark/                 bookmark-list
//	GET POST  /bookmark/new/             bookmark-create
//	GET       /bookmark/{pk:[0-9]+}/     bookmark-detail
//	GET POST  /bookmark/{pk:[0-9]+}/edit/   bookmark-update
//	GET POST  /bookmark/{pk:[0-9]+}/delete/ bookmark-delete
//
// The create route is always registered before the detail route, so a
// permissive path converter (slug, str) never captures the literal "new"
// segment as a lookup value.
//
// # Configuration
//
// Everything except Model and Fields has a default: the URL base is the
// lowercased model type name, records are looked up by "id" through an
// integer path segment named "pk", and all five roles are enabled. See
// [Config] for the full surface.
//
// # Templates
//
// Views render through ordered candidate lists: "{model}{suffix}.html"
// first, the embedded generic "object{suffix}.html" as fallback. Provide
// custom templates via render.NewHTML and [WithRenderer].
//
// # Custom routes and middleware
//
// Resources coexist with plain handlers and middleware:
//
//	app := crud.New(
//	    crud.WithResources(bookmarks),
//	    crud.WithHandlers(pages),
//	    crud.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    crud.WithHealth(crud.WithReadinessCheck("db", repo.Healthcheck(db))),
//	)
package crud
