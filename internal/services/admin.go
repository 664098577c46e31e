package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/acuestore/apiserver/config"
	"github.com/acuestore/apiserver/internal/store"
	"github.com/acuestore/apiserver/types"
)

// Setting keys for the operator credential set.
const (
	settingAdminUser        = "admin_user"
	settingPrimaryPin       = "primary_pin"
	settingSecurityPin      = "security_pin"
	settingSecurityQuestion = "security_question"
	settingSecurityAnswer   = "security_answer"
)

// AdminService manages the operator credential set stored in the settings
// relation and verifies operator sign-in attempts. The credential set is a
// UI gate for the admin panel, not a hardened security boundary.
type AdminService struct {
	settings store.SettingsStore
}

func NewAdminService(settings store.SettingsStore) *AdminService {
	return &AdminService{settings: settings}
}

// Init mirrors the configured credential set into the settings relation so
// the operator panel can read it back. Runs on every boot; config wins.
func (s *AdminService) Init(ctx context.Context, cfg config.AdminConfig) error {
	pairs := map[string]string{
		settingAdminUser:        cfg.AdminUser,
		settingPrimaryPin:       cfg.PrimaryPin,
		settingSecurityPin:      cfg.SecurityPin,
		settingSecurityQuestion: cfg.SecurityQuestion,
		settingSecurityAnswer:   cfg.SecurityAnswer,
	}
	for key, value := range pairs {
		if err := s.settings.SetSetting(ctx, key, value); err != nil {
			return fmt.Errorf("init setting %s: %w", key, err)
		}
	}
	return nil
}

// Settings returns the stored credential set.
func (s *AdminService) Settings(ctx context.Context) (types.AdminSettings, error) {
	var out types.AdminSettings
	for key, dst := range map[string]*string{
		settingAdminUser:        &out.AdminUser,
		settingPrimaryPin:       &out.PrimaryPin,
		settingSecurityPin:      &out.SecurityPin,
		settingSecurityQuestion: &out.SecurityQuestion,
		settingSecurityAnswer:   &out.SecurityAnswer,
	} {
		value, err := s.settings.GetSetting(ctx, key)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return types.AdminSettings{}, err
		}
		*dst = value
	}
	return out, nil
}

// Verify checks a full operator sign-in attempt against the stored
// credential set. All parts must match; which part failed is not disclosed.
func (s *AdminService) Verify(ctx context.Context, user, primaryPin, securityPin, answer string) (bool, error) {
	stored, err := s.Settings(ctx)
	if err != nil {
		return false, err
	}
	ok := user == stored.AdminUser &&
		primaryPin == stored.PrimaryPin &&
		securityPin == stored.SecurityPin &&
		answer == stored.SecurityAnswer
	return ok, nil
}
