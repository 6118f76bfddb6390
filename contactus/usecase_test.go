package contactus_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sapientdcs/contactus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) CreateRecord(ctx context.Context, r contactus.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecordRepository) AllRecords(ctx context.Context) ([]contactus.Record, error) {
	args := m.Called(ctx)
	return args.Get(0).([]contactus.Record), args.Error(1)
}

func (m *MockRecordRepository) GetRecord(ctx context.Context, id string) (contactus.Record, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(contactus.Record), args.Error(1)
}

func TestCheck(t *testing.T) {
	r := new(MockRecordRepository)
	uc := contactus.NewUsecase(r)

	t.Run("should report outcome without storing", func(t *testing.T) {
		s := contactus.Submission{
			ContactEmail:      "john.doe@gmail.com",
			ContactPostalCode: strings.Repeat("p", 21),
		}

		outcome := uc.Check(context.Background(), s)

		assert.False(t, outcome.Valid)
		assert.False(t, outcome.ContactDataValid)
		assert.True(t, outcome.ContactDataValidForExistingAccount)
		assert.Len(t, outcome.Messages(), 1)
		r.AssertNotCalled(t, "CreateRecord")
	})
}

func TestSubmit(t *testing.T) {
	t.Run("should store valid submission", func(t *testing.T) {
		r := new(MockRecordRepository)
		uc := contactus.NewUsecase(r)
		s := contactus.Submission{
			Brand:                     "Magnum",
			Locale:                    "en_GB",
			ContactEmail:              "john.doe@gmail.com",
			ContactFamilyName:         "Bernanke",
			ContactPrimaryPhoneNumber: "02085607676",
		}
		r.On("CreateRecord", mock.Anything, mock.MatchedBy(func(rec contactus.Record) bool {
			return rec.ID != "" && rec.Outcome.Valid && rec.Submission.Brand == "Magnum"
		})).Return(nil).Once()

		rec, err := uc.Submit(context.Background(), s)

		assert.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.ReceivedAt.IsZero())
		assert.True(t, rec.Outcome.Valid)
		assert.Empty(t, rec.Outcome.Violations)
		assert.Equal(t, "+442085607676", rec.PhoneE164)
		r.AssertExpectations(t)
	})

	t.Run("should store invalid submission with its violations", func(t *testing.T) {
		r := new(MockRecordRepository)
		uc := contactus.NewUsecase(r)
		s := contactus.Submission{ContactFamilyName: strings.Repeat("f", 81)}
		r.On("CreateRecord", mock.Anything, mock.Anything).Return(nil).Once()

		rec, err := uc.Submit(context.Background(), s)

		assert.NoError(t, err)
		assert.False(t, rec.Outcome.Valid)
		assert.False(t, rec.Outcome.ContactDataValidForExistingAccount)
		assert.Len(t, rec.Outcome.Violations, 1)
		assert.Empty(t, rec.PhoneE164)
		r.AssertExpectations(t)
	})

	t.Run("should return repository error", func(t *testing.T) {
		r := new(MockRecordRepository)
		uc := contactus.NewUsecase(r)
		storeErr := errors.New("db down")
		r.On("CreateRecord", mock.Anything, mock.Anything).Return(storeErr).Once()

		_, err := uc.Submit(context.Background(), contactus.Submission{})

		assert.ErrorIs(t, err, storeErr)
		r.AssertExpectations(t)
	})
}

func TestListRecords(t *testing.T) {
	r := new(MockRecordRepository)
	uc := contactus.NewUsecase(r)

	t.Run("should return stored records", func(t *testing.T) {
		records := []contactus.Record{{ID: "a"}, {ID: "b"}}
		r.On("AllRecords", mock.Anything).Return(records, nil).Once()

		result, err := uc.ListRecords(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, records, result)
		r.AssertExpectations(t)
	})
}

func TestGetRecord(t *testing.T) {
	r := new(MockRecordRepository)
	uc := contactus.NewUsecase(r)

	t.Run("should fail on blank id", func(t *testing.T) {
		_, err := uc.GetRecord(context.Background(), "  ")

		assert.Equal(t, contactus.ErrInvalidRecordID, err)
		r.AssertNotCalled(t, "GetRecord")
	})

	t.Run("should return the record", func(t *testing.T) {
		rec := contactus.Record{ID: "8c1f0b9e-3a57-4a53-9a8e-1f0c7d2f0a11"}
		r.On("GetRecord", mock.Anything, rec.ID).Return(rec, nil).Once()

		result, err := uc.GetRecord(context.Background(), " "+rec.ID+" ")

		assert.NoError(t, err)
		assert.Equal(t, rec, result)
		r.AssertExpectations(t)
	})

	t.Run("should pass through not found", func(t *testing.T) {
		r.On("GetRecord", mock.Anything, "missing").Return(contactus.Record{}, contactus.ErrRecordNotFound).Once()

		_, err := uc.GetRecord(context.Background(), "missing")

		assert.Equal(t, contactus.ErrRecordNotFound, err)
	})
}

func TestEvaluate(t *testing.T) {
	s := contactus.Submission{ContactUsExpiryDate: "06/2016"}

	outcome := contactus.Evaluate(&s)

	assert.False(t, outcome.Valid)
	assert.True(t, outcome.ContactDataValid)
	assert.Equal(t, s.Messages(), outcome.Messages())
}
