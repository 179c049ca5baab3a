// Package attributes defines the configuration record shared by every
// form-field component plus the modifier chain used to build it. Callers
// start from Default and thread the record through any subset of modifiers;
// each modifier replaces exactly one attribute and leaves the rest, including
// subfield-specific extensions, untouched. The package performs no rendering,
// no validation, and no event dispatch: the finished record is handed to an
// external renderer which reads every attribute and wires the callbacks into
// the application's event loop.
package attributes
