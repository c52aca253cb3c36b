package facultetus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The upstream API is loosely typed: identifiers and flags arrive sometimes
// as JSON strings, sometimes as numbers. Text and Number absorb both shapes.

// Text decodes a JSON string, number, or boolean into a string. null and the
// empty string both decode to "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*t = ""
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		if v {
			*t = "1"
		} else {
			*t = "0"
		}
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*t = Text(n.String())
	}
	return nil
}

func (t Text) String() string { return string(t) }

// Ptr returns nil for the empty value, so empty upstream fields persist as
// NULL rather than empty strings.
func (t Text) Ptr() *string {
	if t == "" {
		return nil
	}
	s := string(t)
	return &s
}

// Number decodes a JSON integer given as a number or a numeric string.
// null and "" decode to the invalid (NULL) value; a non-numeric string is a
// data error and aborts decoding.
type Number struct {
	Int64 int64
	Valid bool
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = Number{}
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = Number{}
			return nil
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// salary bounds occasionally arrive as floats
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("invalid numeric field %q: %w", s, err)
		}
		v = int64(f)
	}
	*n = Number{Int64: v, Valid: true}
	return nil
}

func (n Number) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// List is a list-of-object field ([{"data": "IT"}, ...]).
type List []ListItem

type ListItem struct {
	Data Text `json:"data"`
}

// RawVacancy is one element of the getPositions response array.
type RawVacancy struct {
	PositionID Text `json:"position_id"`

	EmployerID     Number `json:"employer_id"`
	EmployerTitle  Text   `json:"employer_title"`
	EmployerSlogan Text   `json:"employer_slogan"`
	EmployerLogo   Text   `json:"employer_logo"`
	EmployerType   Text   `json:"employer_type"`

	Title         Text `json:"title"`
	Type          Text `json:"type"`
	LookingFor    Text `json:"lookingfor"`
	Region        Text `json:"region"`
	City          Text `json:"city"`
	Address       Text `json:"address"`
	BackgroundPic Text `json:"background_pic"`
	Description   Text `json:"description"`
	Requirements  Text `json:"requirements"`
	Conditions    Text `json:"cond"`

	EduTrialAccept    Text `json:"edu_trial_accept"`
	TempJob           Text `json:"tempjob"`
	ForInternationals Text `json:"forinternationals"`
	ForNewbies        Text `json:"fornewbies"`
	ForDisabled       Text `json:"fordisabled"`
	Remoted           Text `json:"remoted"`
	EduComboFriendly  Text `json:"edu_combo_friendly"`
	FirstYearFriendly Text `json:"first_year_friendly"`
	ForGraduates      Text `json:"for_graduates"`
	InstantPaid       Text `json:"instant_paid"`
	IsActual          Text `json:"is_actual"`

	CashFrom Number `json:"cash_from"`
	CashTo   Number `json:"cash_to"`

	PositionLink Text `json:"position_link"`

	Spheres     List `json:"spheres"`
	Langs       List `json:"langs"`
	Skills      List `json:"skills"`
	Tests       List `json:"tests"`
	Professions List `json:"professions"`
}

// RawActivity is one element of the getActivities response array.
type RawActivity struct {
	ID Text `json:"id"`

	Created    Text `json:"created"`
	CProfileID Text `json:"cprofile_id"`
	Type       Text `json:"type"`
	TypeText   Text `json:"type_text"`

	Published           Text `json:"published"`
	StudentsModeration  Text `json:"students_moderation"`
	StudentsReg         Text `json:"students_reg"`
	CProfilesModeration Text `json:"cprofiles_moderation"`

	LeaderEventID  Text `json:"leader_event_id"`
	TimepadEventID Text `json:"timepad_event_id"`
	UniversityID   Text `json:"university_id"`
	FairID         Text `json:"fair_id"`

	Title         Text `json:"title"`
	Slogan        Text `json:"slogan"`
	Description   Text `json:"description"`
	BackgroundPic Text `json:"background_pic"`

	DateStart Text `json:"date_start"`
	TimeStart Text `json:"time_start"`
	DateEnd   Text `json:"date_end"`
	TimeEnd   Text `json:"time_end"`
	Timezone  Text `json:"timezone"`

	RequireLeaderAuth Text `json:"require_leader_auth"`
	RequireRSVAuth    Text `json:"require_rsv_auth"`

	Region  Text `json:"region"`
	City    Text `json:"city"`
	Address Text `json:"address"`
	Online  Text `json:"online"`

	ExternalLink Text `json:"external_link"`
	AuthorTitle  Text `json:"author_title"`
	AuthorLogo   Text `json:"author_logo"`

	ParticipantsLimitation Text   `json:"participants_limitation"`
	VCEventID              Text   `json:"vc_event_id"`
	PollID                 Number `json:"poll_id"`
	YoutubeID              Number `json:"youtube_id"`
	MyRater                Text   `json:"my_rater"`
	ActivityLink           Text   `json:"activity_link"`

	LocalDatetime    Text   `json:"local_datetime"`
	LocalDatetimeEnd Text   `json:"local_datetime_end"`
	DateSorter       Text   `json:"date_sorter"`
	OneDayPriority   Number `json:"one_day_priority"`

	StudentsQ    Number   `json:"students_q"`
	LinkToken    Text     `json:"link_token"`
	IsPublic     Text     `json:"is_public"`
	SkipAuth     Text     `json:"skip_auth"`
	GroupID      Text     `json:"group_id"`
	PhotoPayload []string `json:"photo_payload"`
}

// RawUniversity is one element of the getUniversities response array.
type RawUniversity struct {
	UniversityID Text `json:"university_id"`

	Title                Text `json:"title"`
	TitleFull            Text `json:"title_full"`
	Logo                 Text `json:"logo"`
	Region               Text `json:"region"`
	City                 Text `json:"city"`
	Type                 Text `json:"type"`
	Link                 Text `json:"link"`
	InstantSubscription  Text `json:"instant_subscription"`
	InstantStudentAccess Text `json:"instant_student_access"`
}
