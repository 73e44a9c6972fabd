// Package diagnostic collects coded findings about record schemas, each
// located by record and field and optionally carrying "did you mean"
// suggestions. Errors stop generation; warnings and infos are printed.
package diagnostic
