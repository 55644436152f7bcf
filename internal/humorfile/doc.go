// SPDX-License-Identifier: MPL-2.0

// Package humorfile loads humor configuration documents into command trees.
//
// A humorfile has two optional top-level keys:
//
//	import:            # other humorfiles, relative to this file's directory
//	  - shared/rust.yaml
//	commands:          # domain -> category -> name -> shell command
//	  rust:
//	    build:
//	      debug: cargo build
//
// Documents are decoded according to their extension: YAML (the default),
// CUE (".cue", where the "import" key must be quoted) or TOML (".toml"). Imports are loaded depth-first in list order
// and merged before the importing document's own commands, so any duplicate
// between them is rejected by commandtree.Tree.Merge.
//
// The base configuration lives at ~/.humors/humor-base.yaml and is treated as
// empty when it does not exist.
package humorfile
