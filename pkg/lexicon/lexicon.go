package lexicon

import "strings"

// Category identifies one of the five program tracks the advisor recommends.
type Category string

const (
	CategoryBTech Category = "btech"
	CategoryBSc   Category = "bsc"
	CategoryBA    Category = "ba"
	CategoryBBA   Category = "bba"
	CategoryBCom  Category = "bcom"
)

// CategoryInfo carries the static descriptive content for one category.
type CategoryInfo struct {
	Keywords []string
	Blurb    string
	Careers  []string
}

// Synonym is one literal replacement applied during normalization.
// The table is a slice, not a map, so replacement order is deterministic.
// Entries may overlap: a later replacement can act on text produced by an
// earlier one (e.g. "physics" -> "science").
type Synonym struct {
	From string
	To   string
}

// Lexicon is the static knowledge base: categories in a fixed order,
// their keyword sets, the synonym table and the conversational phrase
// lists. Built once at startup, read-only afterwards.
type Lexicon struct {
	categories []Category
	info       map[Category]CategoryInfo
	synonyms   []Synonym
}

func New() *Lexicon {
	return &Lexicon{
		categories: []Category{CategoryBTech, CategoryBSc, CategoryBA, CategoryBBA, CategoryBCom},
		info: map[Category]CategoryInfo{
			CategoryBTech: {
				Keywords: []string{"engineering", "technology", "computer", "programming", "math", "physics", "btech", "coding", "software", "hardware"},
				Blurb:    "B.Tech is a 4-year engineering program with excellent career options in IT and core industries.",
				Careers:  []string{"Software Engineer", "Data Scientist", "Systems Architect", "DevOps Engineer", "Embedded Engineer"},
			},
			CategoryBSc: {
				Keywords: []string{"science", "biology", "chemistry", "physics", "mathematics", "experiments", "bsc", "research", "lab", "scientific"},
				Blurb:    "B.Sc emphasizes scientific knowledge, experiments, and research opportunities.",
				Careers:  []string{"Research Scientist", "Lab Technologist", "Data Analyst", "Biotechnologist", "Science Educator"},
			},
			CategoryBA: {
				Keywords: []string{"arts", "literature", "history", "psychology", "languages", "creative", "ba", "writing", "reading", "humanities"},
				Blurb:    "B.A deals with arts, humanities, and social sciences like History, English, and Psychology.",
				Careers:  []string{"Content Writer", "Journalist", "Psychologist", "Civil Services Officer", "Translator"},
			},
			CategoryBBA: {
				Keywords: []string{"business", "management", "marketing", "finance", "entrepreneurship", "bba", "leadership", "strategy", "sales"},
				Blurb:    "BBA focuses on management, marketing, finance, and HR, often leading to MBA.",
				Careers:  []string{"Business Analyst", "Marketing Manager", "HR Executive", "Operations Manager", "Entrepreneur"},
			},
			CategoryBCom: {
				Keywords: []string{"commerce", "accounts", "finance", "taxation", "economics", "bcom", "banking", "audit", "investment"},
				Blurb:    "B.Com is about commerce, accounts, and finance, ideal for banking and CA/CS careers.",
				Careers:  []string{"Chartered Accountant", "Banker", "Financial Analyst", "Tax Consultant", "Auditor"},
			},
		},
		synonyms: []Synonym{
			{"it", "technology"},
			{"computer science", "computer"},
			{"physics", "science"},
			{"chem", "chemistry"},
			{"bio", "biology"},
			{"finance", "commerce"},
			{"history", "arts"},
			{"english", "arts"},
			{"math", "mathematics"},
		},
	}
}

// Categories returns the fixed enumeration order. The order is load-bearing:
// it is the tie-break for direct matches and equal accumulated scores.
func (l *Lexicon) Categories() []Category {
	out := make([]Category, len(l.categories))
	copy(out, l.categories)
	return out
}

// Info returns the descriptive content for a category. The boolean is false
// for identifiers outside the fixed set.
func (l *Lexicon) Info(c Category) (CategoryInfo, bool) {
	info, ok := l.info[c]
	return info, ok
}

// Synonyms returns the ordered replacement table.
func (l *Lexicon) Synonyms() []Synonym {
	out := make([]Synonym, len(l.synonyms))
	copy(out, l.synonyms)
	return out
}

// PseudoDocuments joins each category's keywords into one document,
// in category enumeration order. Input for fitting the vector space.
func (l *Lexicon) PseudoDocuments() []string {
	docs := make([]string, 0, len(l.categories))
	for _, c := range l.categories {
		docs = append(docs, strings.Join(l.info[c].Keywords, " "))
	}
	return docs
}
