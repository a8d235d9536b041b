// Package output renders recorded assertion results for people.
//
// Supported renderers:
//   - Text: ANSI-colored terminal output
//   - HTML: a standalone HTML document
//
// Both are built on the same Styler capability set and share the Render
// sequence: header, caption, result glyphs, failure listing (only when
// something failed) and footer.
package output
