// SPDX-License-Identifier: MPL-2.0

// Package commandtree implements the three-level humor command namespace.
//
// A Tree maps a domain (for example "rust") to its categories (for example
// "build"), and each category maps a command name (for example "debug") to an
// opaque shell command string. Trees are assembled with Merge, which rejects
// duplicates instead of overwriting them, and queried with Find, which picks a
// lookup strategy from the number of address tokens:
//
//	humor debug              // bare name, must be unique across the tree
//	humor rust debug         // domain + name
//	humor rust build debug   // domain + category + name
//
// Duplicate identity is the (domain, name) pair: two categories of the same
// domain cannot both define a command with the same name.
package commandtree
