// Package extract implements the heuristic resume extraction engine: a shared
// section locator, four field extractors (contact, education, experience,
// skills), and the pipeline that orchestrates them over one text input.
//
// Extraction is deterministic and regex-driven; there is no model. Every
// operation is a pure function of its input text, so the engine is safe to
// call from any number of concurrent goroutines.
package extract

import (
	"sort"
	"strings"
)

// sectionVocabulary describes how to recognize one section's boundaries.
type sectionVocabulary struct {
	// headers are the synonyms that may introduce the section.
	headers []string
	// terminators are competing-section synonyms that end the section.
	terminators []string
	// exclusions are phrasings that must never anchor the section start,
	// even when they contain a header synonym.
	exclusions []string
}

// sectionOptions tunes the boundary heuristics per extractor.
type sectionOptions struct {
	// matchAnywhere lets a header synonym anchor the section from anywhere
	// in a line, not only at the start.
	matchAnywhere bool
	// splitMergedStart handles headers merged onto the end of a content line
	// ("... GPA: 3.7 SKILLS"): the anchor line is truncated to begin at the
	// header.
	splitMergedStart bool
	// skipColonContent treats "label: long trailing content" lines as
	// content when scanning for terminators.
	skipColonContent bool
	// maxHeaderWords caps how many words a standalone terminator header may
	// have. Zero means the default of 5.
	maxHeaderWords int
}

// findSection returns the lines of the section introduced by one of the
// vocabulary's header synonyms, including the header line itself, or nil when
// no header matches. Longer synonyms are preferred so "professional
// experience" wins over a bare "experience".
func findSection(lines []string, vocab sectionVocabulary, opts sectionOptions) []string {
	if opts.maxHeaderWords == 0 {
		opts.maxHeaderWords = 5
	}

	headers := append([]string(nil), vocab.headers...)
	sort.Slice(headers, func(i, j int) bool { return len(headers[i]) > len(headers[j]) })

	start := -1
	mergedHeader := ""
	for i, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		if containsAny(lower, vocab.exclusions) {
			continue
		}
		for _, h := range headers {
			idx := strings.Index(lower, h)
			if idx < 0 {
				continue
			}
			if idx == 0 {
				start = i
				break
			}
			if opts.matchAnywhere {
				start = i
				break
			}
			if opts.splitMergedStart {
				start = i
				mergedHeader = h
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return nil
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if isStandaloneHeader(lines[i], vocab.terminators, opts) {
			end = i
			break
		}
	}

	section := append([]string(nil), lines[start:end]...)

	// A competing header merged onto the end of the last content line gets
	// truncated there instead of dragging the next section's content along.
	if last := len(section) - 1; last >= 0 {
		lower := strings.ToLower(section[last])
		for _, t := range vocab.terminators {
			if idx := strings.LastIndex(lower, t); idx > 0 {
				section[last] = strings.TrimSpace(section[last][:idx])
				break
			}
		}
	}

	// Header found mid-line on the anchor: drop the preceding content, which
	// belongs to whatever section came before.
	if mergedHeader != "" && len(section) > 0 {
		lower := strings.ToLower(section[0])
		if idx := strings.Index(lower, mergedHeader); idx > 0 {
			section[0] = section[0][idx:]
		}
	}

	return section
}

// isStandaloneHeader reports whether a line looks like a section header for
// one of the given synonyms: short, and not buried inside a content line.
func isStandaloneHeader(line string, synonyms []string, opts sectionOptions) bool {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)

	// "Category: item, item, item" is content, not a header.
	if opts.skipColonContent {
		if idx := strings.Index(trimmed, ":"); idx >= 0 && len(strings.TrimSpace(trimmed[idx+1:])) > 10 {
			return false
		}
	}

	if len(strings.Fields(trimmed)) > opts.maxHeaderWords {
		return false
	}

	return containsAny(lower, synonyms)
}

// containsAny reports whether the lowercased line contains any of the given
// lowercase phrases.
func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// splitLines splits text into lines, tolerating Windows line endings.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
