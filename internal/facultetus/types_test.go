package facultetus

import (
	"encoding/json"
	"testing"
)

func TestText_UnmarshalJSON(t *testing.T) {
	var payload struct {
		A Text `json:"a"`
		B Text `json:"b"`
		C Text `json:"c"`
		D Text `json:"d"`
		E Text `json:"e"`
	}
	raw := `{"a": "hello", "b": 42, "c": null, "d": true, "e": false}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if payload.A != "hello" {
		t.Fatalf("expected hello, got %q", payload.A)
	}
	if payload.B != "42" {
		t.Fatalf("expected numeric field as string, got %q", payload.B)
	}
	if payload.C != "" {
		t.Fatalf("expected empty for null, got %q", payload.C)
	}
	if payload.D != "1" || payload.E != "0" {
		t.Fatalf("expected booleans as 1/0, got %q %q", payload.D, payload.E)
	}
}

func TestText_Ptr(t *testing.T) {
	if Text("").Ptr() != nil {
		t.Fatalf("expected nil for empty text")
	}
	p := Text("x").Ptr()
	if p == nil || *p != "x" {
		t.Fatalf("unexpected ptr: %v", p)
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	var payload struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
		D Number `json:"d"`
		E Number `json:"e"`
	}
	raw := `{"a": 7, "b": "7", "c": null, "d": "", "e": "120000.5"}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !payload.A.Valid || payload.A.Int64 != 7 {
		t.Fatalf("unexpected a: %+v", payload.A)
	}
	if !payload.B.Valid || payload.B.Int64 != 7 {
		t.Fatalf("expected numeric string accepted, got %+v", payload.B)
	}
	if payload.C.Valid || payload.D.Valid {
		t.Fatalf("expected null and empty string invalid")
	}
	if !payload.E.Valid || payload.E.Int64 != 120000 {
		t.Fatalf("expected float string truncated to int, got %+v", payload.E)
	}
}

func TestNumber_UnmarshalJSON_NonNumeric(t *testing.T) {
	var n Number
	if err := json.Unmarshal([]byte(`"abc"`), &n); err == nil {
		t.Fatalf("expected error for non-numeric string")
	}
}

func TestList_Unmarshal(t *testing.T) {
	var l List
	if err := json.Unmarshal([]byte(`[{"data": "IT"}, {"data": 5}]`), &l); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(l) != 2 || l[0].Data != "IT" || l[1].Data != "5" {
		t.Fatalf("unexpected list: %+v", l)
	}
}
