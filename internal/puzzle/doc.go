// Package puzzle converts a saved puzzle description page into Markdown so it
// can be kept next to the day's solution. Only the <article> elements are
// rendered, and only the small set of tags those articles use is understood.
package puzzle
