// Package declutter extracts the main content region of an HTML document,
// discarding navigation, ads, comments and other boilerplate.
//
// The pipeline walks a host DOM tree, builds a filtered and scored mirror of
// it, selects the highest scoring node and rebuilds that subtree through a
// caller supplied document factory.
//
// This package contains domain types, the DOM capability interfaces and the
// extraction core, following Ben Johnson's Standard Package Layout.
// Adapters live in subdirectories named after their primary dependency
// (e.g., html/, goquery/, bluemonday/).
package declutter
