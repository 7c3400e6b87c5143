package lexicon

import (
	"reflect"
	"testing"
)

func TestCategoriesFixedOrder(t *testing.T) {
	want := []Category{CategoryBTech, CategoryBSc, CategoryBA, CategoryBBA, CategoryBCom}

	// Same definition, same order, every construction.
	for i := 0; i < 3; i++ {
		if got := New().Categories(); !reflect.DeepEqual(got, want) {
			t.Fatalf("Categories() = %v, want %v", got, want)
		}
	}
}

func TestCategoryContent(t *testing.T) {
	lex := New()
	for _, c := range lex.Categories() {
		info, ok := lex.Info(c)
		if !ok {
			t.Fatalf("Info(%s) missing", c)
		}
		if len(info.Keywords) == 0 {
			t.Errorf("category %s has no keywords", c)
		}
		if info.Blurb == "" {
			t.Errorf("category %s has no blurb", c)
		}
		if len(info.Careers) == 0 {
			t.Errorf("category %s has no careers", c)
		}
	}

	if _, ok := lex.Info(Category("mba")); ok {
		t.Error("Info should reject identifiers outside the fixed set")
	}
}

func TestPseudoDocuments(t *testing.T) {
	lex := New()
	docs := lex.PseudoDocuments()
	if len(docs) != len(lex.Categories()) {
		t.Fatalf("got %d pseudo-documents, want %d", len(docs), len(lex.Categories()))
	}
	// Doc i belongs to category i: its identifier appears in its keywords.
	for i, c := range lex.Categories() {
		found := false
		for _, k := range lex.mustInfo(c).Keywords {
			if k == string(c) {
				found = true
			}
		}
		if !found {
			t.Errorf("category %s identifier missing from its own keywords (doc %d: %q)", c, i, docs[i])
		}
	}
}

func TestSynonymTableOrdered(t *testing.T) {
	a, b := New().Synonyms(), New().Synonyms()
	if !reflect.DeepEqual(a, b) {
		t.Error("synonym table order differs across constructions")
	}
	if len(a) == 0 {
		t.Fatal("synonym table is empty")
	}
	if a[0].From != "it" {
		t.Errorf("first synonym = %q, want \"it\"", a[0].From)
	}
}

func TestPhrasePools(t *testing.T) {
	if len(GreetingResponses) == 0 || len(GreetingPhrases) == 0 || len(FarewellPhrases) == 0 {
		t.Fatal("phrase pools must be non-empty")
	}
	if len(EarlyQuestions) < 2 || len(MidQuestions) < 2 {
		t.Error("stage question batches need at least two questions each")
	}
}

func (l *Lexicon) mustInfo(c Category) CategoryInfo {
	info, _ := l.Info(c)
	return info
}
