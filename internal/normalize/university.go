package normalize

import (
	"facultetus-sync/internal/domain"
	"facultetus-sync/internal/facultetus"
)

func University(raw facultetus.RawUniversity) (domain.University, error) {
	universityID, err := externalID("university_id", raw.UniversityID)
	if err != nil {
		return domain.University{}, err
	}

	return domain.University{
		UniversityID: universityID,

		Title:                raw.Title.Ptr(),
		TitleFull:            raw.TitleFull.Ptr(),
		Logo:                 raw.Logo.Ptr(),
		Region:               raw.Region.Ptr(),
		City:                 raw.City.Ptr(),
		Type:                 raw.Type.Ptr(),
		Link:                 raw.Link.Ptr(),
		InstantSubscription:  raw.InstantSubscription.Ptr(),
		InstantStudentAccess: raw.InstantStudentAccess.Ptr(),
	}, nil
}
