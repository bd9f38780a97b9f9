package extract

import (
	"reflect"
	"strings"
	"testing"
)

const loanEntry = `1. ПАО Сбербанк - Потребит. кредит
Дата сделки: 15-03-2019
Сумма и валюта: 250000,00 RUB
Дата окончания срока: 15-03-2024
Статус: действует, платежи вносятся в срок, просрочек не зафиксировано.`

const cardEntry = `2. АО Тинькофф Банк - Кредитная карта
Дата сделки: 02-11-2020
Сумма и валюта: 50000,00 RUB
Использование карты: Да
Дата окончания срока: 31-12-9999
Кредитный лимит возобновляемый, задолженность погашается ежемесячно.`

func TestSplitPage(t *testing.T) {
	t.Run("splits on loan entry headers", func(t *testing.T) {
		s := NewSplitter(SplitterConfig{MinLen: 20})
		got := s.SplitPage(loanEntry + "\n" + cardEntry)
		if len(got) != 2 {
			t.Fatalf("expected 2 paragraphs, got %d: %v", len(got), got)
		}
		if !strings.HasPrefix(got[0], "1. ПАО Сбербанк") {
			t.Errorf("first paragraph starts with %q", got[0][:30])
		}
		if !strings.HasPrefix(got[1], "2. АО Тинькофф Банк") {
			t.Errorf("second paragraph starts with %q", got[1][:30])
		}
	})

	t.Run("page without headers yields nothing", func(t *testing.T) {
		s := NewSplitter(SplitterConfig{MinLen: 10})
		got := s.SplitPage("Сводная информация по кредитной истории субъекта.\nВсего записей: 12.")
		if got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("drops fragments below min length", func(t *testing.T) {
		s := NewSplitter(SplitterConfig{MinLen: 500})
		got := s.SplitPage(loanEntry)
		if len(got) != 0 {
			t.Fatalf("expected short fragment dropped, got %v", got)
		}
	})

	t.Run("min length counts runes not bytes", func(t *testing.T) {
		// 60 Cyrillic runes are 120 bytes; MinLen 100 must still drop them.
		frag := "3. Банк - Микрокредит " + strings.Repeat("к", 40)
		s := NewSplitter(SplitterConfig{MinLen: 100})
		if got := s.SplitPage(frag); len(got) != 0 {
			t.Fatalf("expected rune-length filter to drop fragment, got %v", got)
		}
	})

	t.Run("strips configured header and footer markers", func(t *testing.T) {
		page := "ОТЧЁТ ПО КРЕДИТНОЙ ИСТОРИИ\n" + loanEntry + "\nСтраница 3 из 18"
		s := NewSplitter(SplitterConfig{
			MinLen:       20,
			HeaderMarker: "ОТЧЁТ ПО КРЕДИТНОЙ ИСТОРИИ",
			FooterMarker: "Страница",
		})
		got := s.SplitPage(page)
		if len(got) != 1 {
			t.Fatalf("expected 1 paragraph, got %d", len(got))
		}
		if strings.Contains(got[0], "Страница") {
			t.Errorf("footer leaked into paragraph: %q", got[0])
		}
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		s := NewSplitter(SplitterConfig{MinLen: 20})
		first := s.SplitPage(loanEntry + "\n" + cardEntry)
		second := s.SplitPage(loanEntry + "\n" + cardEntry)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("splitter is not deterministic:\n%v\n%v", first, second)
		}
	})

	t.Run("guarantee entries are recognized", func(t *testing.T) {
		entry := "4. ООО МФК Займер - Поручительство по займу (кредиту)\n" +
			"Дата сделки: 01-06-2021, сумма 120000,00 RUB, срок до 01-06-2023."
		s := NewSplitter(SplitterConfig{MinLen: 20})
		if got := s.SplitPage(entry); len(got) != 1 {
			t.Fatalf("expected guarantee entry recognized, got %v", got)
		}
	})
}

func TestNormalize(t *testing.T) {
	in := "  1. Банк\t-  Микрокредит\n\nСумма:   10000,00  RUB  "
	want := "1. Банк - Микрокредит Сумма: 10000,00 RUB"
	if got := Normalize(in); got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
	if got := Normalize(Normalize(in)); got != want {
		t.Errorf("Normalize is not idempotent: %q", got)
	}
}
