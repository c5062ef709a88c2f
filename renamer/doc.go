// Package renamer rewrites SVG tag names and attribute keys into the casing
// used by component-style SVG renderers.
//
// Two rules apply to every element, in document order:
//
//   - The tag gets an upper-case first character ("rect" becomes "Rect"),
//     except for overrides ("tspan" becomes "TSpan"). A prefixed tag is
//     treated as a single name ("svg:rect" becomes "Svg:rect") unless
//     Rules.RenameLocalNames is set.
//   - Each kebab-case attribute key becomes camelCase ("stroke-width" becomes
//     "strokeWidth"), except preserved keys such as "font-family".
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
// # Options
//
//	result, err := renamer.RenameWithOptions(
//		renamer.WithFilePath("try.svg"),
//		renamer.WithStrictMode(true),
//		renamer.WithIncludeInfo(true),
//	)
//
// # Collisions
//
// When a renamed key already exists on the element (for example both
// "stroke-width" and "strokeWidth"), the element keeps a single key holding
// the value that came last in document order. Each collision is reported as a
// warning in RenameResult.Issues. In strict mode the transform still
// completes but returns a *svgerrors.CollisionError and Success is false.
//
// # Rules
//
// The preserve list and overrides come from [Rules]. [DefaultRules] preserves
// font-family and maps tspan to TSpan; [LoadRules] reads a YAML file that
// extends or, with "replace: true", replaces them.
package renamer
