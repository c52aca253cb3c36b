package normalize

import (
	"fmt"
	"strings"

	"facultetus-sync/internal/domain"
	"facultetus-sync/internal/facultetus"
)

// Activity produces the storage record for one raw event. TypeID is left
// unset; the reconciler resolves it through the activity-type registry.
func Activity(raw facultetus.RawActivity) (domain.Activity, error) {
	id := strings.TrimSpace(raw.ID.String())
	if id == "" {
		return domain.Activity{}, fmt.Errorf("missing id")
	}

	return domain.Activity{
		ID: id,

		Created:    ParseTime(raw.Created.String(), dateTimeLayouts),
		CProfileID: raw.CProfileID.Ptr(),
		Type:       raw.Type.Ptr(),
		TypeText:   raw.TypeText.Ptr(),

		Published:           raw.Published.Ptr(),
		StudentsModeration:  raw.StudentsModeration.Ptr(),
		StudentsReg:         raw.StudentsReg.Ptr(),
		CProfilesModeration: raw.CProfilesModeration.Ptr(),

		LeaderEventID:  raw.LeaderEventID.Ptr(),
		TimepadEventID: raw.TimepadEventID.Ptr(),
		UniversityID:   raw.UniversityID.Ptr(),
		FairID:         raw.FairID.Ptr(),

		Title:         raw.Title.Ptr(),
		Slogan:        raw.Slogan.Ptr(),
		Description:   truncatePtr(raw.Description),
		BackgroundPic: raw.BackgroundPic.Ptr(),

		DateStart: ParseTime(raw.DateStart.String(), dateLayouts),
		TimeStart: ParseTime(raw.TimeStart.String(), clockLayouts),
		DateEnd:   ParseTime(raw.DateEnd.String(), dateLayouts),
		TimeEnd:   ParseTime(raw.TimeEnd.String(), clockLayouts),
		Timezone:  raw.Timezone.Ptr(),

		RequireLeaderAuth: raw.RequireLeaderAuth.Ptr(),
		RequireRSVAuth:    raw.RequireRSVAuth.Ptr(),

		Region:  raw.Region.Ptr(),
		City:    raw.City.Ptr(),
		Address: raw.Address.Ptr(),
		Online:  raw.Online.Ptr(),

		ExternalLink: raw.ExternalLink.Ptr(),
		AuthorTitle:  raw.AuthorTitle.Ptr(),
		AuthorLogo:   raw.AuthorLogo.Ptr(),

		ParticipantsLimitation: raw.ParticipantsLimitation.Ptr(),
		VCEventID:              raw.VCEventID.Ptr(),
		PollID:                 raw.PollID.Ptr(),
		YoutubeID:              raw.YoutubeID.Ptr(),
		MyRater:                raw.MyRater.Ptr(),
		ActivityLink:           raw.ActivityLink.Ptr(),

		LocalDatetime:    ParseTime(raw.LocalDatetime.String(), localDatetimeLayouts),
		LocalDatetimeEnd: ParseTime(raw.LocalDatetimeEnd.String(), dateTimeLayouts),
		DateSorter:       ParseTime(raw.DateSorter.String(), dateTimeLayouts),
		OneDayPriority:   raw.OneDayPriority.Ptr(),

		StudentsQ:    raw.StudentsQ.Ptr(),
		LinkToken:    raw.LinkToken.Ptr(),
		IsPublic:     raw.IsPublic.Ptr(),
		SkipAuth:     raw.SkipAuth.Ptr(),
		GroupID:      raw.GroupID.Ptr(),
		PhotoPayload: joinStrings(raw.PhotoPayload),
	}, nil
}

// photo payloads arrive as a plain string array and persist comma-joined
func joinStrings(items []string) *string {
	if len(items) == 0 {
		return nil
	}
	s := strings.Join(items, ",")
	if s == "" {
		return nil
	}
	return &s
}
