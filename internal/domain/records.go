package domain

import "time"

// Storage-side records. Field sets are the explicit persisted column lists;
// anything the upstream sends that is not here is dropped before persistence.
// External identifiers are assigned upstream and never generated locally.

type Vacancy struct {
	PositionID int64

	EmployerID     *int64
	EmployerTitle  *string
	EmployerSlogan *string
	EmployerLogo   *string
	EmployerType   *string

	Title         *string
	Type          *string
	LookingFor    *string
	Region        *string
	City          *string
	Address       *string
	BackgroundPic *string
	Description   *string
	Requirements  *string
	Conditions    *string

	EduTrialAccept    *string
	TempJob           *string
	ForInternationals *string
	ForNewbies        *string
	ForDisabled       *string
	Remoted           *string
	EduComboFriendly  *string
	FirstYearFriendly *string
	ForGraduates      *string
	InstantPaid       *string
	IsActual          *string

	CashFrom *int64
	CashTo   *int64

	PositionLink *string
	Spheres      *string
	Langs        *string
	Skills       *string
	Tests        *string
	Professions  *string
}

type Activity struct {
	ID string

	Created    *time.Time
	CProfileID *string
	Type       *string
	TypeText   *string
	TypeID     *int64

	Published           *string
	StudentsModeration  *string
	StudentsReg         *string
	CProfilesModeration *string

	LeaderEventID  *string
	TimepadEventID *string
	UniversityID   *string
	FairID         *string

	Title         *string
	Slogan        *string
	Description   *string
	BackgroundPic *string

	DateStart *time.Time
	TimeStart *time.Time
	DateEnd   *time.Time
	TimeEnd   *time.Time
	Timezone  *string

	RequireLeaderAuth *string
	RequireRSVAuth    *string

	Region  *string
	City    *string
	Address *string
	Online  *string

	ExternalLink *string
	AuthorTitle  *string
	AuthorLogo   *string

	ParticipantsLimitation *string
	VCEventID              *string
	PollID                 *int64
	YoutubeID              *int64
	MyRater                *string
	ActivityLink           *string

	LocalDatetime    *time.Time
	LocalDatetimeEnd *time.Time
	DateSorter       *time.Time
	OneDayPriority   *int64

	StudentsQ    *int64
	LinkToken    *string
	IsPublic     *string
	SkipAuth     *string
	GroupID      *string
	PhotoPayload *string
}

type University struct {
	UniversityID int64

	Title                *string
	TitleFull            *string
	Logo                 *string
	Region               *string
	City                 *string
	Type                 *string
	Link                 *string
	InstantSubscription  *string
	InstantStudentAccess *string
}

// Sphere is a locally registered category label. IDs are assigned
// monotonically on first sight and never reused.
type Sphere struct {
	ID   int64
	Name string
}

type ActivityType struct {
	ID   int64
	Name string
}

type RunLog struct {
	ID         int64      `json:"id"`
	RunID      string     `json:"run_id"`
	Resource   string     `json:"resource"`
	Added      int        `json:"added"`
	Updated    int        `json:"updated"`
	Deleted    int        `json:"deleted"`
	Success    bool       `json:"success"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	DateAdded  time.Time  `json:"date_added"`
}

type ResourceStat struct {
	Resource    string     `json:"resource"`
	ActiveRows  int        `json:"active_rows"`
	DeletedRows int        `json:"deleted_rows"`
	LastRunAt   *time.Time `json:"last_run_at,omitempty"`
	LastSuccess *bool      `json:"last_run_success,omitempty"`
}
