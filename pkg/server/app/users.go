/* Copyright 2026 Shelfmark Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package app

import (
	"errors"

	pkgErrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shelfmark/shelfmark/pkg/server/database"
	"github.com/shelfmark/shelfmark/pkg/server/helpers"
	"github.com/shelfmark/shelfmark/pkg/server/log"
)

// TouchLastLoginAt updates the last login timestamp
func (a *App) TouchLastLoginAt(user database.User, tx *gorm.DB) error {
	t := a.Clock.Now()
	if err := tx.Model(&user).Update("last_login_at", &t).Error; err != nil {
		return pkgErrors.Wrap(err, "updating last_login_at")
	}

	return nil
}

// CreateUser registers a user. The password is hashed before storage and
// is never returned.
func (a *App) CreateUser(name, email, password string) (database.User, error) {
	if name == "" {
		return database.User{}, ErrNameRequired
	}
	if email == "" {
		return database.User{}, ErrEmailRequired
	}
	if password == "" {
		return database.User{}, ErrPasswordRequired
	}
	if len(password) < 6 {
		return database.User{}, ErrPasswordTooShort
	}

	tx := a.DB.Begin()

	var count int64
	if err := tx.Model(&database.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "counting users")
	}
	if count > 0 {
		tx.Rollback()
		return database.User{}, ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "hashing password")
	}

	uuid, err := helpers.GenUUID()
	if err != nil {
		tx.Rollback()
		return database.User{}, err
	}

	user := database.User{
		UUID:     uuid,
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "inserting user")
	}

	if err := a.TouchLastLoginAt(user, tx); err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "updating last login")
	}

	tx.Commit()

	return user, nil
}

// Authenticate authenticates a user with the given email and password
func (a *App) Authenticate(email, password string) (*database.User, error) {
	var user database.User
	err := a.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, pkgErrors.Wrap(err, "finding user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrLoginInvalid
	}

	return &user, nil
}

// SignIn signs in a user
func (a *App) SignIn(user *database.User) (*database.Session, error) {
	if err := a.TouchLastLoginAt(*user, a.DB); err != nil {
		log.ErrorWrap(err, "touching login timestamp")
	}

	session, err := a.CreateSession(user.ID)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "creating session")
	}

	return &session, nil
}

// UpdateProfileParams is the parameters for updating a user profile.
// The email is immutable and deliberately absent.
type UpdateProfileParams struct {
	Name  string
	Image *string
}

// UpdateProfile updates the name and avatar of the given user
func (a *App) UpdateProfile(user database.User, p UpdateProfileParams) (database.User, error) {
	if p.Name == "" {
		return database.User{}, ErrNameRequired
	}

	user.Name = p.Name
	if p.Image != nil {
		user.Image = *p.Image
	}

	if err := a.DB.Save(&user).Error; err != nil {
		return database.User{}, pkgErrors.Wrap(err, "updating user")
	}

	return user, nil
}

// GetUserByUUID finds a user with the given uuid
func (a *App) GetUserByUUID(uuid string) (database.User, error) {
	var user database.User
	err := a.DB.Where("uuid = ?", uuid).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.User{}, ErrNotFound
	} else if err != nil {
		return database.User{}, pkgErrors.Wrap(err, "finding user")
	}

	return user, nil
}

// GetUserByEmail finds a user with the given email
func (a *App) GetUserByEmail(email string) (database.User, error) {
	var user database.User
	err := a.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.User{}, ErrNotFound
	} else if err != nil {
		return database.User{}, pkgErrors.Wrap(err, "finding user")
	}

	return user, nil
}

// ResetPassword overwrites the password of the user with the given email.
// It invalidates all of the user's existing sessions.
func (a *App) ResetPassword(email, password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	user, err := a.GetUserByEmail(email)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return pkgErrors.Wrap(err, "hashing password")
	}

	tx := a.DB.Begin()

	if err := tx.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "updating password")
	}

	if err := a.DeleteUserSessions(tx, user.ID); err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "invalidating sessions")
	}

	tx.Commit()

	return nil
}
