// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SectionType classifies a piece of text by the paper section it belongs to.
type SectionType string

const (
	SectionAbstract     SectionType = "abstract"
	SectionIntroduction SectionType = "introduction"
	SectionMethods      SectionType = "methods"
	SectionResults      SectionType = "results"
	SectionDiscussion   SectionType = "discussion"
)

// Valid reports whether s is a known section type.
func (s SectionType) Valid() bool {
	switch s {
	case SectionAbstract, SectionIntroduction, SectionMethods, SectionResults, SectionDiscussion:
		return true
	}
	return false
}

// SectionTypes lists the known section types in paper order.
func SectionTypes() []SectionType {
	return []SectionType{
		SectionAbstract,
		SectionIntroduction,
		SectionMethods,
		SectionResults,
		SectionDiscussion,
	}
}

// WordBounds is the expected word-count range for a section type.
type WordBounds struct {
	// Min is the minimum acceptable word count.
	Min int `json:"min" yaml:"min"`

	// Max is the maximum acceptable word count.
	Max int `json:"max" yaml:"max"`
}

// sectionBounds fixes the word-count expectations per section type.
// Completeness scoring interpolates against these.
var sectionBounds = map[SectionType]WordBounds{
	SectionAbstract:     {Min: 150, Max: 300},
	SectionIntroduction: {Min: 300, Max: 600},
	SectionMethods:      {Min: 400, Max: 700},
	SectionResults:      {Min: 400, Max: 700},
	SectionDiscussion:   {Min: 500, Max: 800},
}

// Content is one piece of section text submitted for assessment or revision.
// It is a value; no component mutates it.
type Content struct {
	// Text is the section body in plain text or Markdown.
	Text string `json:"text" yaml:"text"`

	// Section classifies the text: abstract, introduction, methods,
	// results, or discussion.
	Section SectionType `json:"section" yaml:"section"`
}

// Bounds returns the word-count bounds for the content's section type.
// Unknown section types use the introduction bounds.
func (c Content) Bounds() WordBounds {
	if b, ok := sectionBounds[c.Section]; ok {
		return b
	}
	return sectionBounds[SectionIntroduction]
}
