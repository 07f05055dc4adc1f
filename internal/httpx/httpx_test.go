package httpx

import (
	"net/url"
	"strings"
	"testing"
)

func TestParseLimitPageDefaults(t *testing.T) {
	limit, page, err := ParseLimitPage(url.Values{})
	if err != nil {
		t.Fatalf("ParseLimitPage error: %v", err)
	}
	if limit != 0 || page != 1 {
		t.Fatalf("expected limit=0 page=1, got limit=%d page=%d", limit, page)
	}
}

func TestParseLimitPageValues(t *testing.T) {
	values := url.Values{"limit": {"3"}, "page": {"2"}}
	limit, page, err := ParseLimitPage(values)
	if err != nil {
		t.Fatalf("ParseLimitPage error: %v", err)
	}
	if limit != 3 || page != 2 {
		t.Fatalf("expected limit=3 page=2, got limit=%d page=%d", limit, page)
	}
}

func TestParseLimitPageInvalid(t *testing.T) {
	cases := []url.Values{
		{"limit": {"abc"}},
		{"limit": {"-1"}},
		{"page": {"0"}},
		{"page": {"x"}},
	}
	for _, values := range cases {
		if _, _, err := ParseLimitPage(values); err == nil {
			t.Errorf("expected error for %v", values)
		}
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"a","bogus":1}`), &out)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"a"}{"name":"b"}`), &out)
	if err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestDecodeJSONOK(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	if err := DecodeJSON(strings.NewReader(`{"name":"a"}`), &out); err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if out.Name != "a" {
		t.Fatalf("expected name=a, got %q", out.Name)
	}
}
