package i18n

import "testing"

func TestLedgerLabel(t *testing.T) {
	if got := LedgerLabel("Sales", LanguageJA); got != "売上高" {
		t.Fatalf("ja label = %q", got)
	}
	if got := LedgerLabel("Sales", LanguageEN); got != "Sales" {
		t.Fatalf("en label = %q", got)
	}
}

func TestLedgerLabelUnknownPassthrough(t *testing.T) {
	// User-created ledgers are outside the table and display as-is, in
	// either language. Seeded names with the A/C suffix also fall through.
	for _, name := range []string{"Sharma Traders", "Cash in Hand A/C"} {
		if got := LedgerLabel(name, LanguageJA); got != name {
			t.Fatalf("LedgerLabel(%q) = %q, want passthrough", name, got)
		}
	}
}

func TestLedgerLabelPlugLines(t *testing.T) {
	if got := LedgerLabel("Net Profit (from P&L)", LanguageJA); got != "当期純利益（損益計算書より）" {
		t.Fatalf("plug label = %q", got)
	}
}

func TestParseLanguage(t *testing.T) {
	if ParseLanguage("ja") != LanguageJA {
		t.Fatal("want ja")
	}
	for _, s := range []string{"", "en", "fr", "JA"} {
		if ParseLanguage(s) != LanguageEN {
			t.Fatalf("ParseLanguage(%q): want en fallback", s)
		}
	}
}
