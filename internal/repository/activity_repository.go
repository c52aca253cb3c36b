package repository

import (
	"context"
	"time"

	"facultetus-sync/internal/database"
	"facultetus-sync/internal/domain"
)

type ActivityRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
	Insert(ctx context.Context, a domain.Activity, now time.Time) error
	Update(ctx context.Context, a domain.Activity, now time.Time) error

	// Exact affected-set sweep: activity runs walk the full catalog, so any
	// id not seen this run is stale.
	Reactivate(ctx context.Context, ids []string) (int64, error)
	SoftDeleteAbsent(ctx context.Context, ids []string, now time.Time) (int64, error)
}

type PostgresActivityRepository struct {
	db database.DB
}

func NewPostgresActivityRepository(db database.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM facultetus_activity WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresActivityRepository) Insert(ctx context.Context, a domain.Activity, now time.Time) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO facultetus_activity (
	id, created, cprofile_id, type, type_text, type_id,
	published, students_moderation, students_reg, cprofiles_moderation,
	leader_event_id, timepad_event_id, university_id, fair_id,
	title, slogan, description, background_pic,
	date_start, time_start, date_end, time_end, timezone,
	require_leader_auth, require_rsv_auth,
	region, city, address, online,
	external_link, author_title, author_logo,
	participants_limitation, vc_event_id, poll_id, youtube_id, my_rater, activity_link,
	local_datetime, local_datetime_end, date_sorter, one_day_priority,
	students_q, link_token, is_public, skip_auth, group_id, photo_payload,
	date_added, date_updated, date_deleted
) VALUES (
	$1, $2, $3, $4, $5, $6,
	$7, $8, $9, $10,
	$11, $12, $13, $14,
	$15, $16, $17, $18,
	$19, $20, $21, $22, $23,
	$24, $25,
	$26, $27, $28, $29,
	$30, $31, $32,
	$33, $34, $35, $36, $37, $38,
	$39, $40, $41, $42,
	$43, $44, $45, $46, $47, $48,
	$49, NULL, NULL
)`,
		a.ID, a.Created, a.CProfileID, a.Type, a.TypeText, a.TypeID,
		a.Published, a.StudentsModeration, a.StudentsReg, a.CProfilesModeration,
		a.LeaderEventID, a.TimepadEventID, a.UniversityID, a.FairID,
		a.Title, a.Slogan, a.Description, a.BackgroundPic,
		a.DateStart, a.TimeStart, a.DateEnd, a.TimeEnd, a.Timezone,
		a.RequireLeaderAuth, a.RequireRSVAuth,
		a.Region, a.City, a.Address, a.Online,
		a.ExternalLink, a.AuthorTitle, a.AuthorLogo,
		a.ParticipantsLimitation, a.VCEventID, a.PollID, a.YoutubeID, a.MyRater, a.ActivityLink,
		a.LocalDatetime, a.LocalDatetimeEnd, a.DateSorter, a.OneDayPriority,
		a.StudentsQ, a.LinkToken, a.IsPublic, a.SkipAuth, a.GroupID, a.PhotoPayload,
		now,
	)
	return err
}

func (r *PostgresActivityRepository) Update(ctx context.Context, a domain.Activity, now time.Time) error {
	_, err := r.db.Exec(ctx, `
UPDATE facultetus_activity SET
	created = $2, cprofile_id = $3, type = $4, type_text = $5, type_id = $6,
	published = $7, students_moderation = $8, students_reg = $9, cprofiles_moderation = $10,
	leader_event_id = $11, timepad_event_id = $12, university_id = $13, fair_id = $14,
	title = $15, slogan = $16, description = $17, background_pic = $18,
	date_start = $19, time_start = $20, date_end = $21, time_end = $22, timezone = $23,
	require_leader_auth = $24, require_rsv_auth = $25,
	region = $26, city = $27, address = $28, online = $29,
	external_link = $30, author_title = $31, author_logo = $32,
	participants_limitation = $33, vc_event_id = $34, poll_id = $35, youtube_id = $36, my_rater = $37, activity_link = $38,
	local_datetime = $39, local_datetime_end = $40, date_sorter = $41, one_day_priority = $42,
	students_q = $43, link_token = $44, is_public = $45, skip_auth = $46, group_id = $47, photo_payload = $48,
	date_updated = $49
WHERE id = $1`,
		a.ID, a.Created, a.CProfileID, a.Type, a.TypeText, a.TypeID,
		a.Published, a.StudentsModeration, a.StudentsReg, a.CProfilesModeration,
		a.LeaderEventID, a.TimepadEventID, a.UniversityID, a.FairID,
		a.Title, a.Slogan, a.Description, a.BackgroundPic,
		a.DateStart, a.TimeStart, a.DateEnd, a.TimeEnd, a.Timezone,
		a.RequireLeaderAuth, a.RequireRSVAuth,
		a.Region, a.City, a.Address, a.Online,
		a.ExternalLink, a.AuthorTitle, a.AuthorLogo,
		a.ParticipantsLimitation, a.VCEventID, a.PollID, a.YoutubeID, a.MyRater, a.ActivityLink,
		a.LocalDatetime, a.LocalDatetimeEnd, a.DateSorter, a.OneDayPriority,
		a.StudentsQ, a.LinkToken, a.IsPublic, a.SkipAuth, a.GroupID, a.PhotoPayload,
		now,
	)
	return err
}

func (r *PostgresActivityRepository) Reactivate(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return r.db.Exec(ctx, `
UPDATE facultetus_activity
SET date_deleted = NULL
WHERE id = ANY($1)
  AND date_deleted IS NOT NULL`,
		ids,
	)
}

func (r *PostgresActivityRepository) SoftDeleteAbsent(ctx context.Context, ids []string, now time.Time) (int64, error) {
	return r.db.Exec(ctx, `
UPDATE facultetus_activity
SET date_deleted = $2
WHERE NOT (id = ANY($1))
  AND date_deleted IS NULL`,
		ids, now,
	)
}
