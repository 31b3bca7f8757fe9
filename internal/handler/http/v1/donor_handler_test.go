package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/health_facility_locator/internal/models"
	"github.com/shenikar/health_facility_locator/internal/service"
	"github.com/shenikar/health_facility_locator/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validDonorRequest() RegisterDonorRequest {
	return RegisterDonorRequest{
		UserID:    "user-1",
		Name:      "Ravi Kumar",
		BloodType: "AB-",
		Age:       30,
		WeightKg:  72.5,
		Phone:     "+91 98100 00001",
		Email:     "ravi@example.com",
	}
}

func TestRegisterDonor_Success(t *testing.T) {
	_, _, donorMock, router := newTestHandlerWithDonors(t)
	reqBody := validDonorRequest()

	donorMock.EXPECT().
		RegisterDonor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.BloodDonor) error {
			assert.Equal(t, "user-1", d.ID)
			assert.Equal(t, "AB-", d.BloodType)
			d.IsEligible = true
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/donors", bytes.NewBuffer(bodyBytes), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp DonorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.ID)
	assert.True(t, resp.IsEligible)
	assert.NotNil(t, resp.MedicalConditions)
}

func TestRegisterDonor_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(r *RegisterDonorRequest)
	}{
		{name: "Неизвестная группа крови", mutate: func(r *RegisterDonorRequest) { r.BloodType = "C+" }},
		{name: "Без имени", mutate: func(r *RegisterDonorRequest) { r.Name = "" }},
		{name: "Без возраста", mutate: func(r *RegisterDonorRequest) { r.Age = 0 }},
		{name: "Некорректный email", mutate: func(r *RegisterDonorRequest) { r.Email = "not-an-email" }},
		{name: "Пустое заболевание", mutate: func(r *RegisterDonorRequest) { r.MedicalConditions = []string{""} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, donorMock, router := newTestHandlerWithDonors(t)
			donorMock.EXPECT().RegisterDonor(gomock.Any(), gomock.Any()).Times(0)

			reqBody := validDonorRequest()
			tc.mutate(&reqBody)
			bodyBytes, _ := json.Marshal(reqBody)
			w := makeRequest(router, "POST", "/api/v1/donors", bytes.NewBuffer(bodyBytes), apiKeyHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListDonors_BloodTypeFilter(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "Экранированный плюс", query: "?blood_type=O%2B", expected: "O+"},
		{name: "Плюс как пробел", query: "?blood_type=AB+", expected: "AB+"},
		{name: "Без фильтра", query: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, donorMock, router := newTestHandlerWithDonors(t)
			donorMock.EXPECT().
				ListEligibleDonors(gomock.Any(), tc.expected, 1, 20).
				Return([]*models.BloodDonor{{ID: "user-1", BloodType: "O+", IsEligible: true}}, nil).
				Times(1)

			w := makeRequest(router, "GET", "/api/v1/donors"+tc.query, nil, apiKeyHeader)

			assert.Equal(t, http.StatusOK, w.Code)
			var resp []DonorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Len(t, resp, 1)
		})
	}
}

func TestListDonors_UnknownBloodType(t *testing.T) {
	_, _, donorMock, router := newTestHandlerWithDonors(t)
	donorMock.EXPECT().ListEligibleDonors(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/donors?blood_type=Z", nil, apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDonor_NotFound(t *testing.T) {
	_, _, donorMock, router := newTestHandlerWithDonors(t)
	donorMock.EXPECT().
		GetDonor(gomock.Any(), "ghost").
		Return(nil, fmt.Errorf("service: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/donors/ghost", nil, apiKeyHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordDonation(t *testing.T) {
	validBody := RecordDonationRequest{
		BloodBankID:   "node/77",
		BloodBankName: "City Blood Bank",
		DonationType:  "plasma",
		VolumeML:      600,
	}

	testCases := []struct {
		name         string
		body         RecordDonationRequest
		setupMock    func(m *mocks.MockDonorServiceMockRecorder)
		expectedCode int
	}{
		{
			name: "Успех",
			body: validBody,
			setupMock: func(m *mocks.MockDonorServiceMockRecorder) {
				m.RecordDonation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *models.BloodDonation) error {
						assert.Equal(t, "user-1", d.DonorID)
						assert.Equal(t, models.DonationPlasma, d.DonationType)
						d.ID = uuid.New()
						d.NextEligibleDate = time.Now().Add(d.DonationType.RecoveryInterval())
						return nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Донор не допущен",
			body: validBody,
			setupMock: func(m *mocks.MockDonorServiceMockRecorder) {
				m.RecordDonation(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("service: %w", service.ErrDonorIneligible))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Донор не найден",
			body: validBody,
			setupMock: func(m *mocks.MockDonorServiceMockRecorder) {
				m.RecordDonation(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("service: %w", service.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Ошибка сервиса",
			body: validBody,
			setupMock: func(m *mocks.MockDonorServiceMockRecorder) {
				m.RecordDonation(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Неизвестный тип донации",
			body:         RecordDonationRequest{BloodBankID: "node/77", DonationType: "bone_marrow", VolumeML: 450},
			setupMock:    func(m *mocks.MockDonorServiceMockRecorder) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, donorMock, router := newTestHandlerWithDonors(t)
			tc.setupMock(donorMock.EXPECT())

			bodyBytes, _ := json.Marshal(tc.body)
			w := makeRequest(router, "POST", "/api/v1/donors/user-1/donations", bytes.NewBuffer(bodyBytes), apiKeyHeader)

			assert.Equal(t, tc.expectedCode, w.Code)
		})
	}
}

func TestGetDonationHistory_Success(t *testing.T) {
	_, _, donorMock, router := newTestHandlerWithDonors(t)
	recent := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	donations := []*models.BloodDonation{
		{ID: uuid.New(), DonorID: "user-1", DonationDate: recent, DonationType: models.DonationWholeBlood, VolumeML: 450},
		{ID: uuid.New(), DonorID: "user-1", DonationDate: recent.AddDate(0, -3, 0), DonationType: models.DonationPlasma, VolumeML: 600},
	}
	donorMock.EXPECT().GetDonationHistory(gomock.Any(), "user-1").Return(donations, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/donors/user-1/donations", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []DonationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "whole_blood", resp[0].DonationType)
	assert.Equal(t, recent, resp[0].DonationDate)
}

func TestDonors_RequireAPIKey(t *testing.T) {
	_, _, _, router := newTestHandlerWithDonors(t)

	w := makeRequest(router, "GET", "/api/v1/donors/user-1/donations", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
