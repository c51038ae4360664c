package anki

import (
	"reflect"
	"testing"
)

func TestPathForDeck(t *testing.T) {
	cases := []struct {
		name string
		want DeckPath
	}{
		{
			name: "Math::Algebra::Linear",
			want: DeckPath{Category: "math", FileBase: "algebra_linear", MediaDir: "linear"},
		},
		{
			name: "Vocabulary",
			want: DeckPath{Category: "uncategorized", FileBase: "vocabulary", MediaDir: "vocabulary"},
		},
		{
			name: "Électricité::Circuits RC",
			want: DeckPath{Category: "electricite", FileBase: "circuits_rc", MediaDir: "circuits_rc"},
		},
		{
			name: "!!!",
			want: DeckPath{Category: "uncategorized", FileBase: "_", MediaDir: "_"},
		},
		{
			name: "Deck::???",
			want: DeckPath{Category: "deck", FileBase: "_", MediaDir: "_"},
		},
	}
	for _, c := range cases {
		if got := PathForDeck(c.name); got != c.want {
			t.Errorf("PathForDeck(%q) = %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestSplitDeckName(t *testing.T) {
	got := SplitDeckName("A::B::C")
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("SplitDeckName: got %v", got)
	}
	got = SplitDeckName("Flat")
	if !reflect.DeepEqual(got, []string{"Flat"}) {
		t.Fatalf("SplitDeckName flat: got %v", got)
	}
}

func TestNoteFieldValuesOrder(t *testing.T) {
	note := Note{
		Fields: map[string]NoteField{
			"Back":  {Value: "A", Order: 1},
			"Front": {Value: "<b>Q</b>", Order: 0},
			"Extra": {Value: "E", Order: 2},
		},
	}
	got := note.FieldValues()
	want := []string{"<b>Q</b>", "A", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FieldValues: got %v, want %v", got, want)
	}
}
