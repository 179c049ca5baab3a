// Package fieldconfig loads declarative attribute overrides from JSON/YAML
// documents and compiles them into attribute modifier chains. Documents map
// "objectName.fieldName" paths to per-field settings; applications keep these
// files next to their forms and decorate field configurations at startup
// instead of hard-coding labels and placeholders. Label-like text is run
// through a strict sanitizer so documents sourced from content systems cannot
// smuggle markup into the records.
package fieldconfig
