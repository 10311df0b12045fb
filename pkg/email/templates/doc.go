// Package templates renders notification subjects and HTML bodies.
//
// Content notifications use six fixed templates (pending, published, draft,
// scheduled, updated, trashed); site events use eleven renderers, each a
// pure function of its event arguments. All user-controlled strings pass
// through html/template's contextual escaping, and subject-line titles have
// every CR/LF sequence collapsed to a single space before interpolation to
// block mail header injection.
package templates
