package textproc_test

import (
	"reflect"
	"testing"

	"github.com/shieldsms/smishing-filter/internal/textproc"
)

func TestExtractURLs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "http url",
			text: "Visita http://bit.ly/premio ahora",
			want: []string{"http://bit.ly/premio"},
		},
		{
			name: "https url",
			text: "https://example.com/login",
			want: []string{"https://example.com/login"},
		},
		{
			name: "www url",
			text: "entra a www.google.com hoy",
			want: []string{"www.google.com"},
		},
		{
			name: "bare domain",
			text: "visita banco-falso.com ya",
			want: []string{"banco-falso.com"},
		},
		{
			name: "bare domain contained in http match is skipped",
			text: "abre http://bit.ly/x o busca bit.ly",
			want: []string{"http://bit.ly/x"},
		},
		{
			name: "no urls",
			text: "nos vemos en la tarde",
			want: []string{},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: "   \t  ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textproc.ExtractURLs(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractURLs(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractEmails(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single email",
			text: "escribe a soporte@banco.com hoy",
			want: []string{"soporte@banco.com"},
		},
		{
			name: "no email",
			text: "escribe a soporte pronto",
			want: []string{},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textproc.ExtractEmails(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractEmails(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "long numbers kept short dropped",
			text: "llama al 999888777 o al 12",
			want: []string{"999888777"},
		},
		{
			name: "verification code",
			text: "tu codigo es 4821",
			want: []string{"4821"},
		},
		{
			name: "digits inside words are not standalone",
			text: "abc123def",
			want: []string{},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textproc.ExtractNumbers(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractNumbers(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractAmounts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "all four formats in fixed order",
			text: "gana $1,000.50 o S/ 200 o 300 USD o £50",
			want: []string{"$1,000.50", "300 USD", "S/ 200", "£50"},
		},
		{
			name: "dollar with space",
			text: "premio de $ 5000",
			want: []string{"$ 5000"},
		},
		{
			name: "soles without space",
			text: "deposita S/150.00 hoy",
			want: []string{"S/150.00"},
		},
		{
			name: "plain number is not an amount",
			text: "llama al 5000",
			want: []string{},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textproc.ExtractAmounts(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractAmounts(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "keywords in table order",
			text: "Tu PIN de seguridad",
			want: []string{"pin", "seguridad"},
		},
		{
			name: "whole word only",
			text: "una opinion cualquiera",
			want: []string{},
		},
		{
			name: "case insensitive",
			text: "GRATIS para todos",
			want: []string{"gratis"},
		},
		{
			name: "repeats collapse to one entry",
			text: "gratis gratis gratis",
			want: []string{"gratis"},
		},
		{
			name: "punctuation is a word boundary",
			text: "¡premio! ¿banco?",
			want: []string{"premio", "banco"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textproc.ExtractKeywords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestContainsUrgency(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Responde URGENTE por favor", true},
		{"act now before it is gone", true},
		{"tu cuenta expira mañana", true},
		{"nos vemos en la tarde", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := textproc.ContainsUrgency(tt.text); got != tt.want {
			t.Errorf("ContainsUrgency(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func TestExtractAll(t *testing.T) {
	fs := textproc.ExtractAll("GANA $500 ya!!")

	if len(fs.URLs) != 0 {
		t.Errorf("URLs = %v, want none", fs.URLs)
	}
	if !reflect.DeepEqual(fs.Keywords, []string{"gana"}) {
		t.Errorf("Keywords = %v, want [gana]", fs.Keywords)
	}
	if !reflect.DeepEqual(fs.Numbers, []string{"500"}) {
		t.Errorf("Numbers = %v, want [500]", fs.Numbers)
	}
	if !reflect.DeepEqual(fs.Amounts, []string{"$500"}) {
		t.Errorf("Amounts = %v, want [$500]", fs.Amounts)
	}
	if fs.Length != 14 {
		t.Errorf("Length = %d, want 14", fs.Length)
	}
	if fs.ExclamationCount != 2 {
		t.Errorf("ExclamationCount = %d, want 2", fs.ExclamationCount)
	}
	if fs.UppercaseRatio < 0.6 {
		t.Errorf("UppercaseRatio = %f, want > 0.6", fs.UppercaseRatio)
	}
	if fs.UrgencyPresent {
		t.Error("UrgencyPresent = true, want false")
	}
	if fs.IndicatorCount != 3 {
		t.Errorf("IndicatorCount = %d, want 3", fs.IndicatorCount)
	}
}

func TestExtractAllEmpty(t *testing.T) {
	fs := textproc.ExtractAll("")

	if fs.Length != 0 || fs.IndicatorCount != 0 || fs.UppercaseRatio != 0 {
		t.Errorf("unexpected stats for empty input: %+v", fs)
	}
	for name, list := range map[string][]string{
		"URLs": fs.URLs, "Emails": fs.Emails, "Numbers": fs.Numbers,
		"Amounts": fs.Amounts, "Keywords": fs.Keywords,
	} {
		if list == nil || len(list) != 0 {
			t.Errorf("%s = %v, want empty non-nil slice", name, list)
		}
	}
}
