package v1

import (
	"github.com/shenikar/health_facility_locator/internal/geo"
	"github.com/shenikar/health_facility_locator/internal/locator"
	"github.com/shenikar/health_facility_locator/internal/models"
)

// ModelToFacilityResponse преобразует учреждение в DTO, добавляя ссылку на маршрут
func ModelToFacilityResponse(model models.Facility, origin *geo.Coordinate) *FacilityResponse {
	return &FacilityResponse{
		ID:            model.ID,
		Category:      string(model.Category),
		Name:          model.Name,
		Address:       model.Address,
		Phone:         model.Phone,
		Website:       model.Website,
		OpeningHours:  model.OpeningHours,
		Latitude:      model.Location.Lat,
		Longitude:     model.Location.Lon,
		DistanceKm:    model.DistanceKm,
		TravelMinutes: model.TravelMinutes,
		Extras:        model.Extras,
		DirectionsURL: locator.DirectionsURL(origin, model.Location),
	}
}

// ModelsToFacilityResponses преобразует слайс учреждений в слайс DTO
func ModelsToFacilityResponses(facilities []models.Facility, origin *geo.Coordinate) []*FacilityResponse {
	responses := make([]*FacilityResponse, len(facilities))
	for i, facility := range facilities {
		responses[i] = ModelToFacilityResponse(facility, origin)
	}
	return responses
}

// DTOToBookingModel преобразует DTO записи в доменную модель
func DTOToBookingModel(dto CreateBookingRequest) *models.LabBooking {
	return &models.LabBooking{
		UserID:        dto.UserID,
		LabID:         dto.LabID,
		LabName:       dto.LabName,
		TestName:      dto.TestName,
		ContactName:   dto.ContactName,
		ContactPhone:  dto.ContactPhone,
		PreferredDate: dto.PreferredDate.UTC(),
		Notes:         dto.Notes,
	}
}

// ModelToBookingResponse преобразует доменную модель в DTO для ответа
func ModelToBookingResponse(model *models.LabBooking) *BookingResponse {
	return &BookingResponse{
		ID:            model.ID,
		UserID:        model.UserID,
		LabID:         model.LabID,
		LabName:       model.LabName,
		TestName:      model.TestName,
		ContactName:   model.ContactName,
		ContactPhone:  model.ContactPhone,
		PreferredDate: model.PreferredDate,
		Notes:         model.Notes,
		Status:        string(model.Status),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// ModelsToBookingResponses преобразует слайс моделей в слайс DTO
func ModelsToBookingResponses(models []*models.LabBooking) []*BookingResponse {
	responses := make([]*BookingResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToBookingResponse(model)
	}
	return responses
}

func ModelToStatsResponse(stats *models.SearchStats) *StatsResponse {
	searches := make(map[string]int, len(stats.Searches))
	for category, count := range stats.Searches {
		searches[string(category)] = count
	}
	return &StatsResponse{
		WindowMinutes: stats.WindowMinutes,
		UniqueUsers:   stats.UniqueUsers,
		Searches:      searches,
	}
}

// DTOToDonorModel преобразует DTO регистрации в профиль донора
func DTOToDonorModel(dto RegisterDonorRequest) *models.BloodDonor {
	return &models.BloodDonor{
		ID:                    dto.UserID,
		Name:                  dto.Name,
		BloodType:             dto.BloodType,
		Age:                   dto.Age,
		WeightKg:              dto.WeightKg,
		Phone:                 dto.Phone,
		Email:                 dto.Email,
		Address:               dto.Address,
		MedicalConditions:     dto.MedicalConditions,
		EmergencyContactName:  dto.EmergencyContactName,
		EmergencyContactPhone: dto.EmergencyContactPhone,
	}
}

func ModelToDonorResponse(model *models.BloodDonor) *DonorResponse {
	conditions := model.MedicalConditions
	if conditions == nil {
		conditions = []string{}
	}
	return &DonorResponse{
		ID:                    model.ID,
		Name:                  model.Name,
		BloodType:             model.BloodType,
		Age:                   model.Age,
		WeightKg:              model.WeightKg,
		Phone:                 model.Phone,
		Email:                 model.Email,
		Address:               model.Address,
		LastDonationDate:      model.LastDonationDate,
		IsEligible:            model.IsEligible,
		MedicalConditions:     conditions,
		EmergencyContactName:  model.EmergencyContactName,
		EmergencyContactPhone: model.EmergencyContactPhone,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	}
}

func ModelsToDonorResponses(models []*models.BloodDonor) []*DonorResponse {
	responses := make([]*DonorResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToDonorResponse(model)
	}
	return responses
}

// DTOToDonationModel преобразует DTO донации в доменную модель
func DTOToDonationModel(donorID string, dto RecordDonationRequest) *models.BloodDonation {
	return &models.BloodDonation{
		DonorID:       donorID,
		DonationDate:  dto.DonationDate,
		BloodBankID:   dto.BloodBankID,
		BloodBankName: dto.BloodBankName,
		DonationType:  models.DonationType(dto.DonationType),
		VolumeML:      dto.VolumeML,
		Notes:         dto.Notes,
	}
}

func ModelToDonationResponse(model *models.BloodDonation) *DonationResponse {
	return &DonationResponse{
		ID:               model.ID,
		DonorID:          model.DonorID,
		DonationDate:     model.DonationDate,
		BloodBankID:      model.BloodBankID,
		BloodBankName:    model.BloodBankName,
		DonationType:     string(model.DonationType),
		VolumeML:         model.VolumeML,
		Notes:            model.Notes,
		NextEligibleDate: model.NextEligibleDate,
		CreatedAt:        model.CreatedAt,
	}
}

func ModelsToDonationResponses(models []*models.BloodDonation) []*DonationResponse {
	responses := make([]*DonationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToDonationResponse(model)
	}
	return responses
}
