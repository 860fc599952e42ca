// Package asscodec reads and writes Advanced SubStation Alpha (.ass/.ssa)
// subtitle files. Only Dialogue events become cues and Comment events are
// dropped; the [Script Info]/[V4+ Styles] sections are carried through
// verbatim as document-level metadata so a rewritten file keeps its styling, following
// original_source/subtuner/{parsers,writers}/ass_parser.py and
// ass_writer.py: style, layer, margins, and effect are preserved per-event
// in Metadata, and override tags ({\tag}) are stripped for the displayable
// text but kept in the event's original text for round-tripping.
package asscodec
