package catalog

import "sync"

// canonicalEntries lists the 66 books of the Protestant canon in canonical
// order with KJV chapter counts and common abbreviations.
var canonicalEntries = []Entry{
	// Old Testament
	{ID: "Gen", Name: "Genesis", Chapters: 50, Aliases: []string{"Ge", "Gn"}},
	{ID: "Exod", Name: "Exodus", Chapters: 40, Aliases: []string{"Ex", "Exo"}},
	{ID: "Lev", Name: "Leviticus", Chapters: 27, Aliases: []string{"Lv"}},
	{ID: "Num", Name: "Numbers", Chapters: 36, Aliases: []string{"Nm", "Nu"}},
	{ID: "Deut", Name: "Deuteronomy", Chapters: 34, Aliases: []string{"Deu", "Dt"}},
	{ID: "Josh", Name: "Joshua", Chapters: 24, Aliases: []string{"Jos"}},
	{ID: "Judg", Name: "Judges", Chapters: 21, Aliases: []string{"Jdg"}},
	{ID: "Ruth", Name: "Ruth", Chapters: 4, Aliases: []string{"Ru"}},
	{ID: "1Sam", Name: "1 Samuel", Chapters: 31, Aliases: []string{"1 Sam", "1Samuel"}},
	{ID: "2Sam", Name: "2 Samuel", Chapters: 24, Aliases: []string{"2 Sam", "2Samuel"}},
	{ID: "1Kgs", Name: "1 Kings", Chapters: 22, Aliases: []string{"1 Kgs", "1Kings"}},
	{ID: "2Kgs", Name: "2 Kings", Chapters: 25, Aliases: []string{"2 Kgs", "2Kings"}},
	{ID: "1Chr", Name: "1 Chronicles", Chapters: 29, Aliases: []string{"1 Chr", "1Chronicles"}},
	{ID: "2Chr", Name: "2 Chronicles", Chapters: 36, Aliases: []string{"2 Chr", "2Chronicles"}},
	{ID: "Ezra", Name: "Ezra", Chapters: 10, Aliases: []string{"Ezr"}},
	{ID: "Neh", Name: "Nehemiah", Chapters: 13, Aliases: []string{"Ne"}},
	{ID: "Esth", Name: "Esther", Chapters: 10, Aliases: []string{"Est"}},
	{ID: "Job", Name: "Job", Chapters: 42, Aliases: []string{"Jb"}},
	{ID: "Ps", Name: "Psalms", Chapters: 150, Aliases: []string{"Psa", "Psalm", "Pss"}},
	{ID: "Prov", Name: "Proverbs", Chapters: 31, Aliases: []string{"Pro", "Prv"}},
	{ID: "Eccl", Name: "Ecclesiastes", Chapters: 12, Aliases: []string{"Ecc", "Qoh"}},
	{ID: "Song", Name: "Song of Solomon", Chapters: 8, Aliases: []string{"Song of Songs", "SoS", "Canticles"}},
	{ID: "Isa", Name: "Isaiah", Chapters: 66, Aliases: []string{"Is"}},
	{ID: "Jer", Name: "Jeremiah", Chapters: 52, Aliases: []string{"Je"}},
	{ID: "Lam", Name: "Lamentations", Chapters: 5, Aliases: []string{"La"}},
	{ID: "Ezek", Name: "Ezekiel", Chapters: 48, Aliases: []string{"Eze", "Ezk"}},
	{ID: "Dan", Name: "Daniel", Chapters: 12, Aliases: []string{"Dn"}},
	{ID: "Hos", Name: "Hosea", Chapters: 14, Aliases: []string{"Ho"}},
	{ID: "Joel", Name: "Joel", Chapters: 3, Aliases: []string{"Jl"}},
	{ID: "Amos", Name: "Amos", Chapters: 9, Aliases: []string{"Am"}},
	{ID: "Obad", Name: "Obadiah", Chapters: 1, Aliases: []string{"Oba", "Ob"}},
	{ID: "Jonah", Name: "Jonah", Chapters: 4, Aliases: []string{"Jon"}},
	{ID: "Mic", Name: "Micah", Chapters: 7, Aliases: []string{"Mi"}},
	{ID: "Nah", Name: "Nahum", Chapters: 3, Aliases: []string{"Na"}},
	{ID: "Hab", Name: "Habakkuk", Chapters: 3, Aliases: []string{"Hb"}},
	{ID: "Zeph", Name: "Zephaniah", Chapters: 3, Aliases: []string{"Zep"}},
	{ID: "Hag", Name: "Haggai", Chapters: 2, Aliases: []string{"Hg"}},
	{ID: "Zech", Name: "Zechariah", Chapters: 14, Aliases: []string{"Zec"}},
	{ID: "Mal", Name: "Malachi", Chapters: 4, Aliases: []string{"Ml"}},

	// New Testament
	{ID: "Matt", Name: "Matthew", Chapters: 28, Aliases: []string{"Mat", "Mt"}},
	{ID: "Mark", Name: "Mark", Chapters: 16, Aliases: []string{"Mrk", "Mk"}},
	{ID: "Luke", Name: "Luke", Chapters: 24, Aliases: []string{"Luk", "Lk"}},
	{ID: "John", Name: "John", Chapters: 21, Aliases: []string{"Joh", "Jn"}},
	{ID: "Acts", Name: "Acts", Chapters: 28, Aliases: []string{"Act", "Ac"}},
	{ID: "Rom", Name: "Romans", Chapters: 16, Aliases: []string{"Ro", "Rm"}},
	{ID: "1Cor", Name: "1 Corinthians", Chapters: 16, Aliases: []string{"1 Cor", "1Corinthians"}},
	{ID: "2Cor", Name: "2 Corinthians", Chapters: 13, Aliases: []string{"2 Cor", "2Corinthians"}},
	{ID: "Gal", Name: "Galatians", Chapters: 6, Aliases: []string{"Ga"}},
	{ID: "Eph", Name: "Ephesians", Chapters: 6, Aliases: []string{"Ephes"}},
	{ID: "Phil", Name: "Philippians", Chapters: 4, Aliases: []string{"Php", "Pp"}},
	{ID: "Col", Name: "Colossians", Chapters: 4, Aliases: []string{"Co"}},
	{ID: "1Thess", Name: "1 Thessalonians", Chapters: 5, Aliases: []string{"1 Thess", "1Thessalonians", "1 Th"}},
	{ID: "2Thess", Name: "2 Thessalonians", Chapters: 3, Aliases: []string{"2 Thess", "2Thessalonians", "2 Th"}},
	{ID: "1Tim", Name: "1 Timothy", Chapters: 6, Aliases: []string{"1 Tim", "1Timothy"}},
	{ID: "2Tim", Name: "2 Timothy", Chapters: 4, Aliases: []string{"2 Tim", "2Timothy"}},
	{ID: "Titus", Name: "Titus", Chapters: 3, Aliases: []string{"Tit"}},
	{ID: "Phlm", Name: "Philemon", Chapters: 1, Aliases: []string{"Phm", "Philem"}},
	{ID: "Heb", Name: "Hebrews", Chapters: 13, Aliases: []string{"He"}},
	{ID: "Jas", Name: "James", Chapters: 5, Aliases: []string{"Jm"}},
	{ID: "1Pet", Name: "1 Peter", Chapters: 5, Aliases: []string{"1 Pet", "1Peter", "1 Pt"}},
	{ID: "2Pet", Name: "2 Peter", Chapters: 3, Aliases: []string{"2 Pet", "2Peter", "2 Pt"}},
	{ID: "1John", Name: "1 John", Chapters: 5, Aliases: []string{"1 Jn", "1Jn"}},
	{ID: "2John", Name: "2 John", Chapters: 1, Aliases: []string{"2 Jn", "2Jn"}},
	{ID: "3John", Name: "3 John", Chapters: 1, Aliases: []string{"3 Jn", "3Jn"}},
	{ID: "Jude", Name: "Jude", Chapters: 1, Aliases: []string{"Jud", "Jd"}},
	{ID: "Rev", Name: "Revelation", Chapters: 22, Aliases: []string{"Re", "Apocalypse"}},
}

var (
	canonicalOnce sync.Once
	canonical     *Static
)

// Canonical returns the built-in catalog of the 66-book Protestant canon.
func Canonical() *Static {
	canonicalOnce.Do(func() {
		canonical = MustNew(canonicalEntries)
	})
	return canonical
}

// CanonicalEntries returns a copy of the built-in catalog entries, useful as a
// starting point for custom catalogs.
func CanonicalEntries() []Entry {
	out := make([]Entry, len(canonicalEntries))
	for i, e := range canonicalEntries {
		e.Aliases = append([]string(nil), e.Aliases...)
		out[i] = e
	}
	return out
}
