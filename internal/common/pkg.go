package common

import "path"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// RuntimeImport is the import path of the runtime package generated
// deserializers call into.
const RuntimeImport = "strictjson-generator/jsonrt"

// GeneratedHeader is the first line of every file the generator writes.
const GeneratedHeader = "// Code generated by strictjson-generator. DO NOT EDIT."
