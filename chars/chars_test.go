package chars

import "testing"

func TestCombineSeparateFixtures(t *testing.T) {
	for _, fixture := range charsFixtures {
		if got := Combine(fixture.raw); got != fixture.combined {
			t.Errorf("Combine(%q) = %q, want %q", fixture.raw, got, fixture.combined)
		}
		if got := Separate(fixture.combined); got != fixture.separated {
			t.Errorf("Separate(%q) = %q, want %q", fixture.combined, got, fixture.separated)
		}
	}
}

func TestCombineLigature(t *testing.T) {
	// two bare vovs combine to the tsvey-vovn ligature
	if got := Combine("וו"); got != "װ" {
		t.Errorf("Combine(vov vov) = %q, want tsvey vovn", got)
	}
	// the ligature itself is never separated again
	if got := Separate("װ"); got != "װ" {
		t.Errorf("Separate(tsvey vovn) = %q, want it unchanged", got)
	}
}

// Combination chains: yud yud first combine to tsvey yudn, which then
// absorbs a following patah into the precomposed pointed form.
func TestCombineChains(t *testing.T) {
	if got := Combine("ייַ"); got != "ײַ" {
		t.Errorf("Combine(yud yud patah) = %q, want %q", got, "ײַ")
	}
	if got := Separate("ײַ"); got != "ײַ" {
		t.Errorf("Separate(%q) = %q, want tsvey yudn with patah", "ײַ", got)
	}
}

func TestCombineIdempotent(t *testing.T) {
	for _, fixture := range charsFixtures {
		once := Combine(fixture.raw)
		if twice := Combine(once); twice != once {
			t.Errorf("Combine(Combine(%q)) = %q, want %q", fixture.raw, twice, once)
		}
	}
}
