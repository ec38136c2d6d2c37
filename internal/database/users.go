package database

import (
	"errors"
	"log"
	"time"

	"eizer/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserUpsert carries the fields of an identity upsert. Nil means "leave
// untouched on update"; only supplied fields are written.
type UserUpsert struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *models.UserRole
	LastSignedIn *time.Time
}

// UpsertUser creates or updates an identity keyed on its unique open id.
// When the incoming id matches the configured owner and no explicit role was
// supplied, the role is forced to admin. If no field changed, lastSignedIn
// is still bumped so every upsert is observably a write.
func (s *Store) UpsertUser(u UserUpsert) error {
	if u.OpenID == "" {
		return errors.New("user open id is required for upsert")
	}

	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}

	values := models.User{OpenID: u.OpenID}
	set := map[string]any{}

	if u.Name != nil {
		values.Name = *u.Name
		set["name"] = *u.Name
	}
	if u.Email != nil {
		values.Email = *u.Email
		set["email"] = *u.Email
	}
	if u.LoginMethod != nil {
		values.LoginMethod = *u.LoginMethod
		set["login_method"] = *u.LoginMethod
	}
	if u.LastSignedIn != nil {
		values.LastSignedIn = *u.LastSignedIn
		set["last_signed_in"] = *u.LastSignedIn
	}

	if u.Role != nil {
		values.Role = *u.Role
		set["role"] = *u.Role
	} else if s.opts.OwnerOpenID != "" && u.OpenID == s.opts.OwnerOpenID {
		values.Role = models.RoleAdmin
		set["role"] = models.RoleAdmin
	}

	if values.LastSignedIn.IsZero() {
		values.LastSignedIn = time.Now()
	}
	if len(set) == 0 {
		set["last_signed_in"] = time.Now()
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.Assignments(set),
	}).Create(&values).Error
}

func (s *Store) GetUserByOpenID(openID string) (*models.User, error) {
	db := s.handle()
	if db == nil {
		log.Println("[database] cannot get user: database not available")
		return nil, nil
	}

	var user models.User
	err := db.Where("open_id = ?", openID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByID(id uint) (*models.User, error) {
	db := s.handle()
	if db == nil {
		return nil, nil
	}

	var user models.User
	err := db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsernameOrEmail resolves a login identifier. Local accounts store
// their username in open_id, so one lookup serves both spellings.
func (s *Store) GetUserByUsernameOrEmail(identifier string) (*models.User, error) {
	db := s.handle()
	if db == nil {
		return nil, nil
	}

	var user models.User
	err := db.Where("open_id = ? OR email = ?", identifier, identifier).
		Limit(1).
		Find(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, nil
	}
	return &user, nil
}

func (s *Store) CreateUser(user *models.User) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}
	if user.LastSignedIn.IsZero() {
		user.LastSignedIn = time.Now()
	}
	return db.Create(user).Error
}

func (s *Store) UpdateUserLastSignedIn(id uint) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}
	return db.Model(&models.User{}).
		Where("id = ?", id).
		Update("last_signed_in", time.Now()).Error
}
