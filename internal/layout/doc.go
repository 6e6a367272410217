// Package layout flows a Story of paragraphs, spacers and tables onto fixed
// page templates and returns each page as a list of draw commands.
//
// The engine knows two templates. The Cover template paints a full-bleed
// brand background and hosts a short frame for the cover title; the Content
// template paints a corner accent, a page-number badge and a footer, and hosts
// a full-height frame. A Story switches template only through an explicit
// NextTemplate element, which takes effect on the next page that is started.
//
// Nothing here touches a graphics backend. Backgrounds are pure functions of
// the page number and document metadata, so pages can be inspected in tests
// and serialized by any writer that understands Command.
package layout
