// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree("pbg")
	root.AddCommand(cmd.Command{
		Name:        "help",
		Brief:       "Display help for a command",
		Description: "Display a list of commands, or detailed help for a single command.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})
	root.AddCommand(cmd.Command{
		Name:  "parse",
		Brief: "Parse an expression and dump its tree",
		Description: "Parse a prefix boolean expression and display its parsed" +
			" tree structure, one node per line indented by depth.",
		Usage: "parse <expression>",
		Data:  (*Host).cmdParse,
	})
	root.AddCommand(cmd.Command{
		Name:  "eval",
		Brief: "Evaluate an expression",
		Description: "Parse and evaluate a prefix boolean expression against" +
			" the current dictionary, printing TRUE or FALSE.",
		Usage: "eval <expression>",
		Data:  (*Host).cmdEval,
	})
	root.AddCommand(cmd.Command{
		Name:  "render",
		Brief: "Render a parsed expression back to text",
		Description: "Parse a prefix boolean expression and render its parsed" +
			" tree back to canonical textual form.",
		Usage: "render <expression>",
		Data:  (*Host).cmdRender,
	})
	root.AddCommand(cmd.Command{
		Name:  "set",
		Brief: "Set a dictionary value",
		Description: "Assign a literal value to a dictionary key. With no" +
			" arguments, list all currently assigned keys.",
		Usage: "set [<key> <literal>]",
		Data:  (*Host).cmdSet,
	})
	root.AddCommand(cmd.Command{
		Name:        "get",
		Brief:       "Get a dictionary value",
		Description: "Display the value currently assigned to a dictionary key.",
		Usage:       "get <key>",
		Data:        (*Host).cmdGet,
	})
	root.AddCommand(cmd.Command{
		Name:        "unset",
		Brief:       "Remove a dictionary value",
		Description: "Remove the value currently assigned to a dictionary key.",
		Usage:       "unset <key>",
		Data:        (*Host).cmdUnset,
	})
	root.AddCommand(cmd.Command{
		Name:  "load",
		Brief: "Load dictionary assignments from a file",
		Description: "Read a file of \"key literal\" lines and assign each to" +
			" the dictionary, as though each had been passed to set.",
		Usage: "load <filename>",
		Data:  (*Host).cmdLoad,
	})
	root.AddCommand(cmd.Command{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})

	root.AddShortcut("p", "parse")
	root.AddShortcut("e", "eval")
	root.AddShortcut("r", "render")
	root.AddShortcut("?", "help")

	cmds = root
}
