package resource

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, r := range All {
		got, ok := Parse(r.String())
		if !ok || got != r {
			t.Fatalf("Parse(%q) = %v, %v; want %v, true", r.String(), got, ok, r)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, ok := Parse("gold"); ok {
		t.Fatal("Parse(\"gold\") should fail")
	}
}

func TestOrder(t *testing.T) {
	want := [NumResources]Resource{Lumber, Brick, Wool, Grain, Ore}
	if All != want {
		t.Fatalf("All = %v, want %v", All, want)
	}
}
