// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE humorfiles.
//
// A document is compiled, unified with the embedded #Humorfile schema,
// validated for concreteness and decoded into a Go value:
//
//	res, err := cueutil.ParseAndDecode[Document](schema, data, "#Humorfile",
//	    cueutil.WithFilename("humor.cue"))
//
// Errors carry the file name and the JSON path of the offending field.
package cueutil
