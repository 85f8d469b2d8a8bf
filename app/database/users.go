package database

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/James-Dyer/cse108-lab08/app/models"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// dummyHash is a valid bcrypt digest compared against when the username does
// not exist, keeping the unknown-user path as slow as the known-user path.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// VerifyCredentials looks a user up by username and compares the stored
// bcrypt hash against the supplied password. A missing user and a wrong
// password both return ErrInvalidCredentials so callers cannot tell accounts
// apart. bcrypt's comparison is constant-time for a given hash.
func VerifyCredentials(db *sql.DB, username, password string) (*models.User, error) {
	user, err := GetUserByUsername(db, username)
	if err == sql.ErrNoRows {
		// Burn a comparison anyway so the timing matches the found case.
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

// CreateUser provisions an account with a fixed role. Returns
// ErrDuplicateName when the username is taken.
func CreateUser(db *sql.DB, username, password string, role models.Role) (*models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Username: username, PasswordHash: hash, Role: role}
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, username, hash, string(role)).Scan(&user.ID, &user.CreatedAt)
	if isUniqueViolation(err) {
		return nil, models.ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	var role string
	query := `SELECT id, username, password_hash, role, created_at
			  FROM users WHERE username = $1`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &role, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = models.Role(role)
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	var role string
	query := `SELECT id, username, password_hash, role, created_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &role, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	user.Role = models.Role(role)
	return user, nil
}

func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	rows, err := db.Query(`SELECT id, username, role, created_at FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		var role string
		if err := rows.Scan(&user.ID, &user.Username, &role, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		user.Role = models.Role(role)
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateUserPassword replaces the stored credential hash.
func UpdateUserPassword(db *sql.DB, userID, passwordHash string) error {
	res, err := db.Exec(`UPDATE users SET password_hash = $2 WHERE id = $1`, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteUser removes the account. The store cascades the delete to the
// user's enrollments (and their grades) and teacher assignments.
func DeleteUser(db *sql.DB, userID string) error {
	res, err := db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}
