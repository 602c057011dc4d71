// Package render resolves and executes templates for CRUD views.
//
// Callers pass an ordered list of candidate template names, most specific
// first ("bookmark_list.html", then "object_list.html"); the first name
// that resolves wins. The package ships a generic default template set so
// a resource renders out of the box, and applications override any of them
// by supplying a template with the model-specific name.
//
// The Renderer interface keeps the engine swappable; the bundled
// implementation uses html/template.
package render
