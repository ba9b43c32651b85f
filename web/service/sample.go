package service

import (
	"strings"

	"bioanalytica/database"
	"bioanalytica/database/model"

	"github.com/google/uuid"
)

// SampleService implements owner-scoped CRUD over the samples table. Every
// query filters by the owning user id; a sample id alone never grants
// access.
type SampleService struct{}

// Create persists a new sample for ownerId. The name is required; quantity
// and description may be nil/empty. A unique tracking code is minted
// server-side for labelling.
func (s *SampleService) Create(ownerId int, name, sampleType string, quantity *float64, description string) (*model.Sample, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrValidation
	}

	sample := &model.Sample{
		UserId:      ownerId,
		Code:        uuid.NewString(),
		SampleName:  name,
		SampleType:  sampleType,
		Quantity:    quantity,
		Description: description,
	}
	if err := database.GetDB().Create(sample).Error; err != nil {
		return nil, err
	}
	return sample, nil
}

// List returns the samples owned by ownerId, newest first. The id tiebreak
// keeps the order deterministic for rows created within the same second.
func (s *SampleService) List(ownerId int) ([]model.Sample, error) {
	samples := make([]model.Sample, 0)
	err := database.GetDB().
		Where("user_id = ?", ownerId).
		Order("created_at DESC, id DESC").
		Find(&samples).
		Error
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// Delete removes the sample only when it exists and belongs to ownerId.
// Both cases report ErrNotFound so a caller cannot probe for other users'
// sample ids.
func (s *SampleService) Delete(ownerId int, sampleId int) error {
	result := database.GetDB().
		Where("id = ? AND user_id = ?", sampleId, ownerId).
		Delete(&model.Sample{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
