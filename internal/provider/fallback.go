// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/revision-engine/pkg/types"
)

// RuleBasedProvider is the dependency-free deterministic backend that
// anchors the fallback chain. Generation fills a fixed per-section
// template; revision applies rule-based rewrites keyed by the suggestion
// dimensions (contraction expansion, sentence splitting, transition
// insertion, register substitution). Identical input always yields
// identical output, and no call can fail.
type RuleBasedProvider struct{}

// NewRuleBasedProvider returns the deterministic backend.
func NewRuleBasedProvider() *RuleBasedProvider {
	return &RuleBasedProvider{}
}

func (p *RuleBasedProvider) ID() types.ProviderID { return types.ProviderDeterministic }

func (p *RuleBasedProvider) AlwaysAvailable() bool { return true }

// sectionScaffolds are the generation templates, one per section type.
// %s is the topic.
var sectionScaffolds = map[types.SectionType]string{
	types.SectionAbstract: "This study examines %s. The analysis synthesizes findings from the relevant literature and identifies the principal methodological approaches. " +
		"The results indicate several consistent patterns across prior work, and the findings suggest directions for further investigation. " +
		"Moreover, the review highlights open questions that remain insufficiently addressed in the literature.",
	types.SectionIntroduction: "Research on %s has grown substantially in recent years. This section establishes the background of the problem, states the research objectives, and outlines the scope of the study. " +
		"However, significant gaps remain in the current understanding. Therefore, this study addresses those gaps through a structured analysis of the available evidence. " +
		"Furthermore, the significance of the work is discussed in relation to prior findings.",
	types.SectionMethods: "The methodology for investigating %s follows a systematic design. The procedure comprises data collection, screening against inclusion criteria, and structured analysis. " +
		"Materials were selected according to predefined relevance criteria. Subsequently, the analysis applied consistent quality-assessment procedures to each source, and validation steps were performed to verify the reliability of the results.",
	types.SectionResults: "The analysis of %s yielded several findings. The data indicate consistent patterns across the examined sources, and the observations align with the methodological expectations established earlier. " +
		"Furthermore, the statistics summarize the distribution of outcomes across conditions. These findings are reported without interpretation, which follows in the discussion.",
	types.SectionDiscussion: "The findings on %s warrant careful interpretation. The results suggest implications for both theory and practice, although several limitations constrain the generality of these conclusions. " +
		"Moreover, the evidence appears consistent with prior work in the area. Future research may extend the present analysis to broader settings, and further validation would strengthen the observed patterns.",
}

func (p *RuleBasedProvider) Generate(_ context.Context, req Request) (string, error) {
	tmpl, ok := sectionScaffolds[req.Section]
	if !ok {
		tmpl = sectionScaffolds[types.SectionIntroduction]
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		topic = "the stated research question"
	}
	return fmt.Sprintf(tmpl, topic), nil
}

func (p *RuleBasedProvider) Revise(_ context.Context, req Request) (string, error) {
	text := req.Text
	for _, s := range req.Suggestions {
		switch s.Dimension {
		case types.DimAcademicTone:
			text = formalizeRegister(text)
		case types.DimClarity:
			text = splitLongSentences(text)
		case types.DimCoherence:
			text = insertTransitions(text)
		case types.DimCompleteness:
			text = padTowardBounds(text, req.Section)
		}
	}
	return text, nil
}

// contractions maps casual forms to their formal expansions. Replacement
// is longest-match-first by construction of the list below.
var contractions = []struct{ from, to string }{
	{"shouldn't", "should not"},
	{"wouldn't", "would not"},
	{"couldn't", "could not"},
	{"doesn't", "does not"},
	{"didn't", "did not"},
	{"aren't", "are not"},
	{"wasn't", "was not"},
	{"isn't", "is not"},
	{"won't", "will not"},
	{"can't", "cannot"},
	{"don't", "do not"},
	{"it's", "it is"},
	{"that's", "that is"},
	{"there's", "there is"},
	{"they're", "they are"},
	{"we're", "we are"},
	{"I'm", "I am"},
}

// informalSwaps replaces casual intensifiers with academic register.
var informalSwaps = []struct{ from, to string }{
	{"a lot of", "a considerable number of"},
	{"kind of", "somewhat"},
	{"sort of", "somewhat"},
	{"really", "notably"},
	{"pretty", "relatively"},
	{"very", "highly"},
	{"stuff", "material"},
}

func formalizeRegister(text string) string {
	for _, c := range contractions {
		text = strings.ReplaceAll(text, c.from, c.to)
		text = strings.ReplaceAll(text, capitalize(c.from), capitalize(c.to))
	}
	for _, s := range informalSwaps {
		text = strings.ReplaceAll(text, " "+s.from+" ", " "+s.to+" ")
	}
	text = strings.ReplaceAll(text, "!", ".")
	return text
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

const longSentenceWords = 25

// splitLongSentences breaks sentences above longSentenceWords at the
// first coordinating boundary past the midpoint.
func splitLongSentences(text string) string {
	sentences := splitSentences(text)
	for i, sent := range sentences {
		if len(strings.Fields(sent)) <= longSentenceWords {
			continue
		}
		for _, sep := range []string{", and ", ", but ", "; "} {
			idx := strings.Index(sent[len(sent)/3:], sep)
			if idx < 0 {
				continue
			}
			idx += len(sent) / 3
			head := strings.TrimRight(sent[:idx], ",; ")
			tail := strings.TrimSpace(sent[idx+len(sep):])
			sentences[i] = head + ". " + capitalize(tail)
			break
		}
	}
	return strings.Join(sentences, " ")
}

// transitionCycle provides deterministic connective openers.
var transitionCycle = []string{"Moreover,", "Furthermore,", "In addition,", "Consequently,"}

// knownTransitions marks sentences that already open with a connective.
var knownTransitions = []string{
	"however", "therefore", "furthermore", "moreover", "consequently",
	"in addition", "in contrast", "thus", "subsequently", "nevertheless",
}

func startsWithTransition(sentence string) bool {
	lower := strings.ToLower(strings.TrimSpace(sentence))
	for _, t := range knownTransitions {
		if strings.HasPrefix(lower, t) {
			return true
		}
	}
	return false
}

// insertTransitions prefixes every second sentence lacking a connective
// with the next opener from the cycle.
func insertTransitions(text string) string {
	sentences := splitSentences(text)
	next := 0
	for i := 1; i < len(sentences); i += 2 {
		if startsWithTransition(sentences[i]) {
			continue
		}
		sentences[i] = transitionCycle[next%len(transitionCycle)] + " " + lowerFirst(sentences[i])
		next++
	}
	return strings.Join(sentences, " ")
}

func lowerFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	// Keep acronyms and the pronoun I intact.
	if len(s) > 1 && s[1] >= 'A' && s[1] <= 'Z' {
		return s
	}
	if s == "I" || strings.HasPrefix(s, "I ") {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// elaborations extend an under-length section with hedged, on-register
// sentences. Two per revision keeps growth measurable without flooding.
var elaborations = map[types.SectionType][]string{
	types.SectionAbstract: {
		"The analysis further summarizes the methodological approaches represented in the reviewed literature.",
		"These findings suggest implications for subsequent research in the area.",
	},
	types.SectionIntroduction: {
		"The background of the problem is situated within the broader research context established by prior work.",
		"The objectives and the significance of the study are stated to delimit the scope of the analysis.",
	},
	types.SectionMethods: {
		"The procedure and materials are documented so the analysis can be reproduced under equivalent conditions.",
		"Validation steps were applied throughout to verify the consistency of the analysis.",
	},
	types.SectionResults: {
		"The data and the associated statistics are reported for each condition examined.",
		"Additional observations consistent with the primary findings are summarized for completeness.",
	},
	types.SectionDiscussion: {
		"The interpretation of these results acknowledges the limitations inherent in the evidence base.",
		"The implications for future work follow from the patterns identified in the analysis.",
	},
}

func padTowardBounds(text string, section types.SectionType) string {
	bounds := types.Content{Section: section}.Bounds()
	if len(strings.Fields(text)) >= bounds.Min {
		return text
	}
	extra, ok := elaborations[section]
	if !ok {
		extra = elaborations[types.SectionIntroduction]
	}
	text = strings.TrimSpace(text)
	for _, sentence := range extra {
		if strings.Contains(text, sentence) {
			continue
		}
		text = text + " " + sentence
	}
	return text
}

// splitSentences breaks text into sentences, keeping terminal punctuation.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			s := strings.TrimSpace(current.String())
			if s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
