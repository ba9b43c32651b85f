package service

import (
	"bioanalytica/config"
	"bioanalytica/database"
	"bioanalytica/database/model"
	"bioanalytica/util/random"
)

const tokenSecretKey = "tokenSecret"

// SettingService reads and writes key/value settings persisted in the
// database.
type SettingService struct{}

func (s *SettingService) getSetting(key string) (*model.Setting, error) {
	db := database.GetDB()
	setting := &model.Setting{}
	err := db.Model(model.Setting{}).Where("key = ?", key).First(setting).Error
	if err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) saveSetting(key string, value string) error {
	setting, err := s.getSetting(key)
	db := database.GetDB()
	if database.IsNotFound(err) {
		return db.Create(&model.Setting{
			Key:   key,
			Value: value,
		}).Error
	} else if err != nil {
		return err
	}
	setting.Value = value
	return db.Save(setting).Error
}

// GetTokenSecret returns the secret used to sign bearer tokens. The
// BIO_JWT_SECRET environment variable wins when set; otherwise a random
// secret is generated on first use and persisted so tokens survive restarts.
func (s *SettingService) GetTokenSecret() ([]byte, error) {
	if envSecret := config.GetJWTSecret(); envSecret != "" {
		return []byte(envSecret), nil
	}

	setting, err := s.getSetting(tokenSecretKey)
	if err == nil {
		return []byte(setting.Value), nil
	}
	if !database.IsNotFound(err) {
		return nil, err
	}

	secret := random.Seq(32)
	if err := s.saveSetting(tokenSecretKey, secret); err != nil {
		return nil, err
	}
	return []byte(secret), nil
}
