package normalize

import (
	"facultetus-sync/internal/domain"
	"facultetus-sync/internal/facultetus"
)

// Vacancy produces the storage record for one raw position. The external ID
// is required; everything else degrades per-field.
func Vacancy(raw facultetus.RawVacancy) (domain.Vacancy, error) {
	positionID, err := externalID("position_id", raw.PositionID)
	if err != nil {
		return domain.Vacancy{}, err
	}

	return domain.Vacancy{
		PositionID: positionID,

		EmployerID:     raw.EmployerID.Ptr(),
		EmployerTitle:  raw.EmployerTitle.Ptr(),
		EmployerSlogan: raw.EmployerSlogan.Ptr(),
		EmployerLogo:   raw.EmployerLogo.Ptr(),
		EmployerType:   raw.EmployerType.Ptr(),

		Title:         raw.Title.Ptr(),
		Type:          raw.Type.Ptr(),
		LookingFor:    raw.LookingFor.Ptr(),
		Region:        raw.Region.Ptr(),
		City:          raw.City.Ptr(),
		Address:       raw.Address.Ptr(),
		BackgroundPic: raw.BackgroundPic.Ptr(),
		Description:   truncatePtr(raw.Description),
		Requirements:  truncatePtr(raw.Requirements),
		Conditions:    truncatePtr(raw.Conditions),

		EduTrialAccept:    raw.EduTrialAccept.Ptr(),
		TempJob:           raw.TempJob.Ptr(),
		ForInternationals: raw.ForInternationals.Ptr(),
		ForNewbies:        raw.ForNewbies.Ptr(),
		ForDisabled:       raw.ForDisabled.Ptr(),
		Remoted:           raw.Remoted.Ptr(),
		EduComboFriendly:  raw.EduComboFriendly.Ptr(),
		FirstYearFriendly: raw.FirstYearFriendly.Ptr(),
		ForGraduates:      raw.ForGraduates.Ptr(),
		InstantPaid:       raw.InstantPaid.Ptr(),
		IsActual:          raw.IsActual.Ptr(),

		CashFrom: raw.CashFrom.Ptr(),
		CashTo:   raw.CashTo.Ptr(),

		PositionLink: raw.PositionLink.Ptr(),
		Spheres:      JoinList(raw.Spheres),
		Langs:        JoinList(raw.Langs),
		Skills:       JoinList(raw.Skills),
		Tests:        JoinList(raw.Tests),
		Professions:  JoinList(raw.Professions),
	}, nil
}
