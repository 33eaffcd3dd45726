// Package wordseek looks up words on Wiktionary and extracts their
// etymologies, pronunciations and part-of-speech definitions for a given
// language.
//
// Wiktionary pages do not nest their hierarchy (language, etymology,
// pronunciation, part of speech) as containers. It is encoded as a flat run
// of sibling nodes delimited by headings and section boundaries, and the
// extraction engine rebuilds it from that run.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, etree/).
package wordseek
