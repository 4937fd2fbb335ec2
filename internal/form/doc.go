// Package form defines the ADUI form document produced by the converter.
//
// A Document holds a single tab of fields. Every field carries a component
// kind, a generated identifier, a sort weight and a validation block. Two
// kinds carry an extra payload:
//
//   - SelectField: a Reference list of option values with palette colors
//   - TaskListField: a TaskData block with tasks, dependency edges and an
//     embedded relationships list
//
// # Embedded values
//
// Some members are consumed as JSON text rather than nested objects (the
// TaskListField color schemes and relationship list). Embedded wraps such a
// value: it is kept structured in memory and encoded as a JSON string on the
// wire, in both JSON and YAML output.
//
// # Edge direction
//
// Relationship and Dependency describe the same adjacency with opposite
// directions. A Relationship points from the earlier task to the later one;
// a Dependency points from the later task back to the earlier one and uses a
// hyphenated type tag. Consumers rely on both shapes exactly as they are.
package form
