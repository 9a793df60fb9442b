package renderer

import (
	"reflect"
	"testing"
)

func TestParseMarkup(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want []Span
	}{
		{"plain", "hello", []Span{{"hello", StyleNormal}}},
		{"empty", "", nil},
		{
			"item",
			"Picked up: ITEM{Health Potion}",
			[]Span{{"Picked up: ", StyleNormal}, {"Health Potion", StyleItem}},
		},
		{
			"mixed",
			"ROOM{Library} has ACTION{3} items",
			[]Span{{"Library", StyleRoom}, {" has ", StyleNormal}, {"3", StyleAction}, {" items", StyleNormal}},
		},
		{
			"unknown function kept",
			"FOO{bar} ok",
			[]Span{{"FOO{bar} ok", StyleNormal}},
		},
		{
			"punctuation in operand",
			"ITEM{Dean's Key, spare}",
			[]Span{{"Dean's Key, spare", StyleItem}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseMarkup(tt.msg); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseMarkup(%q) = %#v, want %#v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestStripMarkup(t *testing.T) {
	if got := StripMarkup("You enter ROOM{Cafeteria}!"); got != "You enter Cafeteria!" {
		t.Errorf("StripMarkup = %q", got)
	}
}

func TestApplyMarkup_Formats(t *testing.T) {
	if got := ApplyMarkup("Picked up: ITEM{%s}", "Scroll"); got != "Picked up: ITEM{Scroll}" {
		t.Errorf("ApplyMarkup = %q", got)
	}
}
