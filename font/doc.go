// The font subpackage provides helper methods to parse .ttf and .otf
// font files, query their naming tables and organize them into
// libraries. Font face loading lives outside the rendering core on
// purpose: the engine only requires a parsed [sfnt.Font] handle.
package font
