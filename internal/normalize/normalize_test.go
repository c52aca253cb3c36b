package normalize

import (
	"strings"
	"testing"
	"time"

	"facultetus-sync/internal/facultetus"
)

func TestParseTime_Layouts(t *testing.T) {
	got := ParseTime("2024-03-15 10:30:00", dateTimeLayouts)
	if got == nil {
		t.Fatalf("expected parse, got nil")
	}
	want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if ParseTime("2024-03-15", dateLayouts) == nil {
		t.Fatalf("expected date-only parse")
	}
	if ParseTime("18:00:00", clockLayouts) == nil {
		t.Fatalf("expected clock parse")
	}
	// local datetime fields arrive in both shapes
	if ParseTime("2024-03-15 10:30:00", localDatetimeLayouts) == nil {
		t.Fatalf("expected local datetime parse")
	}
	if ParseTime("2024-03-15", localDatetimeLayouts) == nil {
		t.Fatalf("expected local date fallback parse")
	}
}

func TestParseTime_BadInputIsNil(t *testing.T) {
	if got := ParseTime("", dateTimeLayouts); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if got := ParseTime("not a date", dateTimeLayouts); got != nil {
		t.Fatalf("expected nil for garbage input, got %v", got)
	}
	if got := ParseTime("15/03/2024", dateLayouts); got != nil {
		t.Fatalf("expected nil for unaccepted layout, got %v", got)
	}
}

func TestJoinList(t *testing.T) {
	joined := JoinList(facultetus.List{{Data: "IT"}, {Data: "Finance"}})
	if joined == nil || *joined != "IT;Finance" {
		t.Fatalf("expected IT;Finance, got %v", joined)
	}

	if got := JoinList(nil); got != nil {
		t.Fatalf("expected nil for absent list, got %q", *got)
	}
	if got := JoinList(facultetus.List{}); got != nil {
		t.Fatalf("expected nil for empty list, got %q", *got)
	}
}

func TestSplitList_RoundTrip(t *testing.T) {
	tokens := SplitList("IT;Finance")
	if len(tokens) != 2 || tokens[0] != "IT" || tokens[1] != "Finance" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}

	tokens = SplitList(" IT ; ;Finance;")
	if len(tokens) != 2 || tokens[0] != "IT" || tokens[1] != "Finance" {
		t.Fatalf("expected blank tokens dropped, got %v", tokens)
	}

	if tokens := SplitList(""); tokens != nil {
		t.Fatalf("expected no tokens for empty input, got %v", tokens)
	}
}

func TestTruncate(t *testing.T) {
	short := strings.Repeat("a", MaxTextLen)
	if got := Truncate(short); got != short {
		t.Fatalf("expected value at the limit untouched")
	}

	long := strings.Repeat("a", MaxTextLen+50)
	got := Truncate(long)
	if len([]rune(got)) != MaxTextLen {
		t.Fatalf("expected %d runes, got %d", MaxTextLen, len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-10:])
	}
	if !strings.HasPrefix(got, strings.Repeat("a", MaxTextLen-3)) {
		t.Fatalf("expected original prefix preserved")
	}
}

func TestTruncate_MultibyteRunes(t *testing.T) {
	long := strings.Repeat("я", MaxTextLen+1)
	got := Truncate(long)
	if n := len([]rune(got)); n != MaxTextLen {
		t.Fatalf("expected %d runes, got %d", MaxTextLen, n)
	}
}

func TestVacancy_Mapping(t *testing.T) {
	raw := facultetus.RawVacancy{
		PositionID:   "12345",
		EmployerID:   facultetus.Number{Int64: 77, Valid: true},
		Title:        "Go developer",
		Description:  facultetus.Text(strings.Repeat("x", MaxTextLen+100)),
		CashFrom:     facultetus.Number{Int64: 90000, Valid: true},
		Spheres:      facultetus.List{{Data: "IT"}, {Data: "Finance"}},
		Skills:       facultetus.List{{Data: "Go"}},
		ForGraduates: "1",
	}

	v, err := Vacancy(raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.PositionID != 12345 {
		t.Fatalf("expected position id 12345, got %d", v.PositionID)
	}
	if v.EmployerID == nil || *v.EmployerID != 77 {
		t.Fatalf("unexpected employer id: %v", v.EmployerID)
	}
	if v.Spheres == nil || *v.Spheres != "IT;Finance" {
		t.Fatalf("unexpected spheres: %v", v.Spheres)
	}
	if v.Description == nil || len([]rune(*v.Description)) != MaxTextLen {
		t.Fatalf("expected description truncated to %d runes", MaxTextLen)
	}
	if v.CashFrom == nil || *v.CashFrom != 90000 {
		t.Fatalf("unexpected cash_from: %v", v.CashFrom)
	}
	if v.Region != nil {
		t.Fatalf("expected absent field to map to nil")
	}
}

func TestVacancy_MissingID(t *testing.T) {
	if _, err := Vacancy(facultetus.RawVacancy{Title: "no id"}); err == nil {
		t.Fatalf("expected error for missing position_id")
	}
}

func TestActivity_Mapping(t *testing.T) {
	raw := facultetus.RawActivity{
		ID:            "A-42",
		Created:       "2024-03-01 09:00:00",
		Type:          "hackathon",
		DateStart:     "2024-03-15",
		TimeStart:     "10:00:00",
		LocalDatetime: "2024-03-15 10:00:00",
		PhotoPayload:  []string{"a.jpg", "b.jpg"},
	}

	a, err := Activity(raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.ID != "A-42" {
		t.Fatalf("unexpected id %q", a.ID)
	}
	if a.Created == nil || a.DateStart == nil || a.TimeStart == nil || a.LocalDatetime == nil {
		t.Fatalf("expected date fields parsed")
	}
	if a.PhotoPayload == nil || *a.PhotoPayload != "a.jpg,b.jpg" {
		t.Fatalf("unexpected photo payload: %v", a.PhotoPayload)
	}
}

func TestUniversity_Mapping(t *testing.T) {
	u, err := University(facultetus.RawUniversity{UniversityID: "508", Title: "MSU"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.UniversityID != 508 {
		t.Fatalf("expected id 508, got %d", u.UniversityID)
	}
	if u.Title == nil || *u.Title != "MSU" {
		t.Fatalf("unexpected title: %v", u.Title)
	}

	if _, err := University(facultetus.RawUniversity{Title: "no id"}); err == nil {
		t.Fatalf("expected error for missing university_id")
	}
}
