package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"claims-portal-backend/internal/auth"
	"claims-portal-backend/internal/config"
	"claims-portal-backend/internal/database"
	"claims-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name,omitempty"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	// Lecturers only
	CenterName     string `yaml:"center_name,omitempty"`
	DepartmentName string `yaml:"department_name,omitempty"`
}

type CenterData struct {
	Name             string `yaml:"name"`
	CoordinatorEmail string `yaml:"coordinator_email"`
}

type DepartmentData struct {
	Name       string `yaml:"name"`
	CenterName string `yaml:"center_name"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CentersFile struct {
	Centers []CenterData `yaml:"centers"`
}

type DepartmentsFile struct {
	Departments []DepartmentData `yaml:"departments"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadDataFromYAMLFiles seeds users without affiliation first, then centers
// (which need their coordinator), departments, and finally lecturers.
// Existing rows are matched by natural key and left untouched.
func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var users UsersFile
	if err := loadYAML(dataDir, "users", &users); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var centers CentersFile
	if err := loadYAML(dataDir, "centers", &centers); err != nil {
		return fmt.Errorf("failed to load centers: %w", err)
	}
	var departments DepartmentsFile
	if err := loadYAML(dataDir, "departments", &departments); err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		userMap := make(map[string]*models.User)
		userCreated := 0
		for _, userData := range users.Users {
			if models.Role(userData.Role) == models.RoleLecturer {
				continue
			}
			user, created, err := createUser(tx, userData, nil, nil)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
			}
			userMap[user.Email] = user
			if created {
				userCreated++
			}
		}

		centerMap := make(map[string]*models.Center)
		centerCreated := 0
		for _, centerData := range centers.Centers {
			center, created, err := createCenter(tx, centerData, userMap)
			if err != nil {
				return fmt.Errorf("failed to create center %s: %w", centerData.Name, err)
			}
			centerMap[centerData.Name] = center
			if created {
				centerCreated++
			}
		}
		log.Printf("Centers: %d created, %d total", centerCreated, len(centers.Centers))

		departmentMap := make(map[string]*models.Department)
		departmentCreated := 0
		for _, departmentData := range departments.Departments {
			department, created, err := createDepartment(tx, departmentData, centerMap)
			if err != nil {
				return fmt.Errorf("failed to create department %s: %w", departmentData.Name, err)
			}
			departmentMap[departmentKey(departmentData.CenterName, departmentData.Name)] = department
			if created {
				departmentCreated++
			}
		}
		log.Printf("Departments: %d created, %d total", departmentCreated, len(departments.Departments))

		for _, userData := range users.Users {
			if models.Role(userData.Role) != models.RoleLecturer {
				continue
			}

			var centerID, departmentID *uuid.UUID
			if userData.CenterName != "" {
				center := centerMap[userData.CenterName]
				if center == nil {
					return fmt.Errorf("center %s not found for lecturer %s", userData.CenterName, userData.Email)
				}
				centerID = &center.ID
				if userData.DepartmentName != "" {
					department := departmentMap[departmentKey(userData.CenterName, userData.DepartmentName)]
					if department == nil {
						return fmt.Errorf("department %s not found in center %s", userData.DepartmentName, userData.CenterName)
					}
					departmentID = &department.ID
				}
			}

			_, created, err := createUser(tx, userData, centerID, departmentID)
			if err != nil {
				return fmt.Errorf("failed to create lecturer %s: %w", userData.Email, err)
			}
			if created {
				userCreated++
			}
		}
		log.Printf("Users: %d created, %d total", userCreated, len(users.Users))

		return nil
	})
}

func departmentKey(centerName, departmentName string) string {
	return centerName + "/" + departmentName
}

// loadYAML merges every *.yaml file under dataDir whose path mentions kind into out
func loadYAML(dataDir, kind string, out interface{ merge([]byte) error }) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := out.merge(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func (f *UsersFile) merge(data []byte) error {
	var file UsersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	f.Users = append(f.Users, file.Users...)
	return nil
}

func (f *CentersFile) merge(data []byte) error {
	var file CentersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	f.Centers = append(f.Centers, file.Centers...)
	return nil
}

func (f *DepartmentsFile) merge(data []byte) error {
	var file DepartmentsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	f.Departments = append(f.Departments, file.Departments...)
	return nil
}

func createUser(db *gorm.DB, userData UserData, centerID, departmentID *uuid.UUID) (*models.User, bool, error) {
	role := models.Role(userData.Role)
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", userData.Role)
	}

	email := strings.ToLower(strings.TrimSpace(userData.Email))
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}

		hash, err := auth.HashPassword(userData.Password)
		if err != nil {
			return nil, false, err
		}
		user = models.User{
			Email:            email,
			PasswordHash:     hash,
			Role:             role,
			LecturerCenterID: centerID,
			DepartmentID:     departmentID,
		}
		if userData.Name != "" {
			name := userData.Name
			user.Name = &name
		}

		if err := db.Create(&user).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, true, nil
	}

	return &user, false, nil
}

func createCenter(db *gorm.DB, centerData CenterData, userMap map[string]*models.User) (*models.Center, bool, error) {
	coordinator := userMap[strings.ToLower(centerData.CoordinatorEmail)]
	if coordinator == nil {
		return nil, false, fmt.Errorf("coordinator %s not found for center %s", centerData.CoordinatorEmail, centerData.Name)
	}
	if coordinator.Role != models.RoleCoordinator {
		return nil, false, fmt.Errorf("user %s is not a coordinator", coordinator.Email)
	}

	var center models.Center
	if err := db.Where("name = ?", centerData.Name).First(&center).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query center: %w", err)
		}

		center = models.Center{
			Name:          centerData.Name,
			CoordinatorID: coordinator.ID,
		}
		if err := db.Create(&center).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create center: %w", err)
		}
		return &center, true, nil
	}

	return &center, false, nil
}

func createDepartment(db *gorm.DB, departmentData DepartmentData, centerMap map[string]*models.Center) (*models.Department, bool, error) {
	center := centerMap[departmentData.CenterName]
	if center == nil {
		return nil, false, fmt.Errorf("center %s not found for department %s", departmentData.CenterName, departmentData.Name)
	}

	var department models.Department
	err := db.Where("center_id = ? AND name = ?", center.ID, departmentData.Name).First(&department).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query department: %w", err)
		}

		department = models.Department{
			Name:     departmentData.Name,
			CenterID: center.ID,
		}
		if err := db.Create(&department).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create department: %w", err)
		}
		return &department, true, nil
	}

	return &department, false, nil
}
