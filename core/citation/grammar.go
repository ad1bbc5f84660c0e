package citation

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/core/scripture"
)

// specLexer tokenizes the numeric part of a citation (everything after the
// book name).
var specLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Letter", Pattern: `[a-zA-Z]`}, // verse part, one letter per token
	{Name: "Punct", Pattern: `[,:\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Numbers are captured as strings and converted with strconv.Atoi so that
// leading zeros are read as decimal.

// verseToken matches "16", "16a" and "16 a".
//
//nolint:govet // participle grammar tags are not standard struct tags
type verseToken struct {
	Number string `@Int`
	Part   string `@Letter?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type verseItem struct {
	Start *verseToken `@@`
	End   *verseToken `( "-" @@ )?`
}

// verseList matches "16", "16-18", "3,5-7,9a".
//
//nolint:govet // participle grammar tags are not standard struct tags
type verseList struct {
	Items []*verseItem `@@ ( "," @@ )*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type chapterItem struct {
	Start string `@Int`
	End   string `( "-" @Int )?`
}

// chapterList matches "1", "1-2", "1,3-5".
//
//nolint:govet // participle grammar tags are not standard struct tags
type chapterList struct {
	Items []*chapterItem `@@ ( "," @@ )*`
}

// chapterVerse matches "4:3" and "4:3b".
//
//nolint:govet // participle grammar tags are not standard struct tags
type chapterVerse struct {
	Chapter string      `@Int ":"`
	Verse   *verseToken `@@`
}

var (
	verseTokenParser = participle.MustBuild[verseToken](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
	verseListParser = participle.MustBuild[verseList](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
	chapterListParser = participle.MustBuild[chapterList](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
	chapterVerseParser = participle.MustBuild[chapterVerse](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
)

// parseVerseList parses a comma-separated verse list against a fixed chapter.
func parseVerseList(chapter int, text string) (scripture.VerseRanges, error) {
	parsed, err := verseListParser.ParseString("", text)
	if err != nil {
		return scripture.VerseRanges{}, &errors.ParseError{Input: strings.TrimSpace(text), Message: "malformed verse list", Err: err}
	}

	var ranges scripture.VerseRanges
	for _, item := range parsed.Items {
		start, err := item.Start.verse(chapter)
		if err != nil {
			return scripture.VerseRanges{}, err
		}
		if item.End == nil {
			ranges = ranges.Add(scripture.SingleVerse(start))
			continue
		}
		end, err := item.End.verse(chapter)
		if err != nil {
			return scripture.VerseRanges{}, err
		}
		r, err := scripture.NewVerseRange(start, end)
		if err != nil {
			return scripture.VerseRanges{}, err
		}
		ranges = ranges.Add(r)
	}
	return ranges, nil
}

// parseChapterList parses a comma-separated list of chapters and chapter spans.
func parseChapterList(text string) (scripture.ChapterRanges, error) {
	parsed, err := chapterListParser.ParseString("", text)
	if err != nil {
		return scripture.ChapterRanges{}, &errors.ParseError{Input: strings.TrimSpace(text), Message: "malformed chapter list", Err: err}
	}

	var ranges scripture.ChapterRanges
	for _, item := range parsed.Items {
		start, err := atoi(item.Start)
		if err != nil {
			return scripture.ChapterRanges{}, err
		}
		end := start
		if item.End != "" {
			if end, err = atoi(item.End); err != nil {
				return scripture.ChapterRanges{}, err
			}
		}
		r, err := scripture.NewChapterRange(start, end)
		if err != nil {
			return scripture.ChapterRanges{}, err
		}
		ranges = ranges.Add(r)
	}
	return ranges, nil
}

// parseChapterVerse parses a "chapter:verse" pair such as "5:2" or "5:2a".
func parseChapterVerse(text string) (scripture.Verse, error) {
	parsed, err := chapterVerseParser.ParseString("", text)
	if err != nil {
		return scripture.Verse{}, &errors.ParseError{Input: strings.TrimSpace(text), Message: "expected chapter:verse", Err: err}
	}
	chapter, err := atoi(parsed.Chapter)
	if err != nil {
		return scripture.Verse{}, err
	}
	return parsed.Verse.verse(chapter)
}

// parseChapterNumber parses the chapter that precedes ':' in a verse citation.
func parseChapterNumber(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.IndexFunc(text, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, errors.NewParse(text, "expected chapter number")
	}
	return atoi(text)
}

// ParseVerseToken parses a single verse token ("16", "16a", " 16 b ") in the
// given chapter. Tokens with a leading letter or more than one letter fail
// with *errors.ParseError.
func ParseVerseToken(chapter int, text string) (scripture.Verse, error) {
	tok, err := verseTokenParser.ParseString("", text)
	if err != nil {
		return scripture.Verse{}, &errors.ParseError{Input: strings.TrimSpace(text), Message: "malformed verse", Err: err}
	}
	return tok.verse(chapter)
}

func (t *verseToken) verse(chapter int) (scripture.Verse, error) {
	n, err := atoi(t.Number)
	if err != nil {
		return scripture.Verse{}, err
	}
	if t.Part == "" {
		return scripture.NewVerse(chapter, n)
	}
	return scripture.NewVersePart(chapter, n, unicode.ToLower(rune(t.Part[0])))
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &errors.ParseError{Input: s, Message: "number out of range", Err: err}
	}
	return n, nil
}
