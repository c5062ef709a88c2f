// Package svgcase converts SVG markup into the naming style used by
// component-based UI code: tags get an upper-case first letter and kebab-case
// attribute keys become camelCase.
//
//	<svg stroke-width="2"><tspan font-size="12"/></svg>
//
// becomes
//
//	<Svg strokeWidth="2"><TSpan fontSize="12"/></Svg>
//
// # Packages
//
//   - document: parse and write XML documents, preserving order and prolog
//   - walker: depth-first traversal with XPath-like element paths
//   - renamer: the tag and attribute renaming rules and transform
//   - batch: convert a directory of files concurrently
//   - watch: re-run a conversion whenever the input changes
//   - svgerrors: typed errors shared by every package
//
// # Quick Start
//
//	result, err := renamer.RenameFile("try.svg", "out.svg")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d tags, %d attributes renamed\n",
//		result.Stats.TagsRenamed, result.Stats.AttributesRenamed)
//
// Rules can be extended from a YAML file:
//
//	rules, err := renamer.LoadRules("svgcase.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := renamer.RenameWithOptions(
//		renamer.WithFilePath("try.svg"),
//		renamer.WithRules(rules),
//	)
//
// # Command Line
//
// The svgcase command converts try.svg to out.svg in the working directory.
// Subcommands cover directories (batch), continuous conversion (watch), an
// MCP server over stdio (mcp), and build information (version).
package svgcase
